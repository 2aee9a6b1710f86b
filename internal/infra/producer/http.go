package producer

import (
	"context"
	"net/http"
	"strconv"

	"promo-bonus-service/internal/domain/pool"
	"promo-bonus-service/internal/pkg/errs"
	"promo-bonus-service/internal/usecase/commands"

	"github.com/ecodeclub/ekit/net/httpx"
)

// HTTPProducer asks a remote code-generation service for a batch. The service
// answers GET {url}?denomination=D&count=N with {"success", "codes", "error"}.
type HTTPProducer struct {
	url    string
	client *http.Client
}

func NewHTTPProducer(url string, client *http.Client) *HTTPProducer {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProducer{url: url, client: client}
}

type produceResponse struct {
	Success bool     `json:"success"`
	Codes   []string `json:"codes"`
	Error   string   `json:"error"`
}

func (p *HTTPProducer) Produce(ctx context.Context, d pool.Denomination, count int) (commands.ProducerBatch, error) {
	batch := commands.ProducerBatch{Requested: count}

	var res produceResponse
	err := httpx.NewRequest(ctx, http.MethodGet, p.url).
		Client(p.client).
		AddParam("denomination", d.String()).
		AddParam("count", strconv.Itoa(count)).
		Do().
		JSONScan(&res)
	if err != nil {
		return batch, errs.Wrap(err, "code producer request failed")
	}

	batch.Codes = res.Codes
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "code producer reported failure"
		}
		return batch, errs.New(msg)
	}
	return batch, nil
}
