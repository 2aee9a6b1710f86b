//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"promo-bonus-service/internal/domain/ledger"
	"promo-bonus-service/internal/handler/api"
	resdto "promo-bonus-service/internal/handler/dto/response"
	"promo-bonus-service/internal/handler/middleware"
	"promo-bonus-service/internal/pkg/errs"
	"promo-bonus-service/internal/usecase/commands"
	"promo-bonus-service/tests/common/builder"
	"promo-bonus-service/tests/common/httptest"
	"promo-bonus-service/tests/common/testutil"
	commandsmock "promo-bonus-service/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockWebhookCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	h := api.NewWebhookHandler(s.mockCmds)
	s.router.POST("/webhook", h.Handle)
	s.router.POST("/lead-reserve", h.LeadReserve)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

const orderCreatePayload = `{
	"event": "order.create",
	"context": {
		"id": 1001,
		"buyer": {"phone": "+380 50 123 45 67"},
		"promocode": "BONUS",
		"discount_amount": 150,
		"products_total": 1000,
		"grand_total": 850
	}
}`

func (s *WebhookHandlerTestSuite) TestOrderCreate() {
	s.mockCmds.EXPECT().Handle(gomock.Any(), commands.WebhookEvent{
		Event:          commands.EventOrderCreate,
		OrderID:        "1001",
		Phone:          "+380 50 123 45 67",
		Promocode:      "BONUS",
		DiscountAmount: 150,
		ProductsTotal:  1000,
		GrandTotal:     850,
	}).Return(&commands.WebhookResult{
		Action: commands.WebhookActionReserve,
		Ledger: &commands.LedgerResult{Phone: "380501234567", OrderID: "1001", Outcome: ledger.OutcomeApplied, Status: ledger.StatusReserved, Active: 50, Reserved: 150},
	}, nil).Times(1)

	var body resdto.WebhookResponse
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhook", orderCreatePayload)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

	s.True(body.Success)
	s.Equal("reserve", body.Action)
	s.Require().NotNil(body.Ledger)
	s.Equal(150, body.Ledger.Reserved)
}

func (s *WebhookHandlerTestSuite) TestIgnoredEvent() {
	s.mockCmds.EXPECT().Handle(gomock.Any(), gomock.Any()).
		Return(&commands.WebhookResult{Action: commands.WebhookActionIgnored, Reason: "unsupported event order.delete"}, nil).Times(1)

	var body resdto.WebhookResponse
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhook", `{"event":"order.delete","context":{"id":"7"}}`)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

	s.Equal("ignored", body.Action)
	s.Contains(body.Message, "order.delete")
	s.Nil(body.Ledger)
}

func (s *WebhookHandlerTestSuite) TestInvalidPayload() {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "broken json", raw: `{"event":`},
		{name: "missing event", raw: `{"context":{"id":1}}`},
		{name: "id is an object", raw: `{"event":"order.create","context":{"id":{"x":1}}}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhook", tt.raw)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payload")
		})
	}
}

func (s *WebhookHandlerTestSuite) TestLedgerRejection() {
	s.mockCmds.EXPECT().Handle(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(ledger.ErrInvalidTransition, errs.ErrInvalidTransition)).Times(1)

	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhook",
		`{"event":"order.change_order_status","context":{"id":1,"buyer":{"phone":"0501234567"},"status_group":"completed"}}`)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already finalized")
}

func (s *WebhookHandlerTestSuite) TestNumericIDAndNestedOverrides() {
	payload := testutil.DtoMap(s.T(),
		builder.NewWebhookBuilder().WithPhone("0501234567").AsCompleted(1239).BuildRequestDTO(),
		testutil.Field("context.id", 555),
		testutil.Field("context.promocode", nil),
	)

	s.mockCmds.EXPECT().Handle(gomock.Any(), commands.WebhookEvent{
		Event:          commands.EventOrderStatusChange,
		OrderID:        "555",
		Phone:          "0501234567",
		DiscountAmount: 100,
		ProductsTotal:  1000,
		GrandTotal:     1239,
		StatusGroup:    commands.StatusGroupCompleted,
	}).Return(&commands.WebhookResult{
		Action: commands.WebhookActionComplete,
		Ledger: &commands.LedgerResult{Phone: "380501234567", OrderID: "555", Outcome: ledger.OutcomeApplied, Status: ledger.StatusCompleted, Active: 123},
	}, nil).Times(1)

	var body resdto.WebhookResponse
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhook", payload)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

	s.Equal("complete", body.Action)
	s.Require().NotNil(body.Ledger)
	s.Equal(string(ledger.StatusCompleted), body.Ledger.Status)
}

const leadReservePayload = `{
	"order_id": 2002,
	"phone": "+380 50 123 45 67",
	"amount": 400,
	"order_total": 1000,
	"current_discount": 200
}`

func (s *WebhookHandlerTestSuite) TestLeadReserve() {
	s.mockCmds.EXPECT().LeadReserve(gomock.Any(), commands.LeadReserveInput{
		OrderID:         "2002",
		Phone:           "+380 50 123 45 67",
		Amount:          400,
		OrderTotal:      1000,
		CurrentDiscount: 200,
	}).Return(&commands.LeadReserveResult{
		Requested: 400,
		Allowed:   300,
		Ledger: &commands.LedgerResult{
			Phone: "380501234567", OrderID: "2002", Outcome: ledger.OutcomeApplied, Status: ledger.StatusReserved,
			Active: 200, Reserved: 300, ManualReserved: 300,
		},
	}, nil).Times(1)

	var body resdto.LeadReserveResponse
	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/lead-reserve", leadReservePayload)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)

	s.True(body.Success)
	s.Equal(400, body.Requested)
	s.Equal(300, body.Allowed)
	s.Equal(300, body.Reserved)
	s.Require().NotNil(body.Ledger)
	s.Equal(200, body.Ledger.Active)
}

func (s *WebhookHandlerTestSuite) TestLeadReserveInvalidPayload() {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "broken json", raw: `{"order_id":`},
		{name: "missing order total", raw: `{"order_id":1,"phone":"0501234567","amount":10}`},
		{name: "zero amount", raw: `{"order_id":1,"phone":"0501234567","amount":0,"order_total":100}`},
		{name: "negative current discount", raw: `{"order_id":1,"phone":"0501234567","amount":10,"order_total":100,"current_discount":-5}`},
		{name: "missing phone", raw: `{"order_id":1,"amount":10,"order_total":100}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/lead-reserve", tt.raw)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payload")
		})
	}
}

func (s *WebhookHandlerTestSuite) TestLeadReserveDiscountLimit() {
	s.mockCmds.EXPECT().LeadReserve(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("order 2002 has no discount headroom"), errs.ErrDiscountLimit)).Times(1)

	rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/lead-reserve", leadReservePayload)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Order discount limit reached")
}
