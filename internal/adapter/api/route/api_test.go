package route

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
	"github.com/openclaw/openclaw-pos/internal/domain/appconfig"
	"github.com/openclaw/openclaw-pos/internal/domain/catalog"
	"github.com/openclaw/openclaw-pos/internal/domain/commerce"
	"github.com/openclaw/openclaw-pos/internal/domain/inventory"
	"github.com/openclaw/openclaw-pos/internal/domain/org"
	"github.com/openclaw/openclaw-pos/internal/domain/procurement"
	"github.com/openclaw/openclaw-pos/internal/domain/report"
	"github.com/openclaw/openclaw-pos/internal/domain/sales"
	"github.com/openclaw/openclaw-pos/internal/domain/syncoutbox"
	"github.com/openclaw/openclaw-pos/internal/domain/till"
	"github.com/openclaw/openclaw-pos/pkg/apikey"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

const testWriteKey = "test-write-key"

// Repositórios em memória usados nos testes de rota. Cada escrita é contada
// para permitir verificar que requisições barradas não tocam o armazenamento.

type memOrgRepo struct {
	units     []org.OrgUnit
	employees []org.Employee
	customers []org.Customer
	writes    int
}

func (m *memOrgRepo) CreateOrgUnit(_ context.Context, u *org.OrgUnit) error {
	m.writes++
	m.units = append(m.units, *u)
	return nil
}
func (m *memOrgRepo) ListOrgUnits(_ context.Context) ([]org.OrgUnit, error) { return m.units, nil }
func (m *memOrgRepo) CreateEmployee(_ context.Context, e *org.Employee) error {
	m.writes++
	m.employees = append(m.employees, *e)
	return nil
}
func (m *memOrgRepo) ListEmployees(_ context.Context) ([]org.Employee, error) {
	return m.employees, nil
}
func (m *memOrgRepo) CreateCustomer(_ context.Context, c *org.Customer) error {
	m.writes++
	m.customers = append(m.customers, *c)
	return nil
}
func (m *memOrgRepo) ListCustomers(_ context.Context) ([]org.Customer, error) {
	return m.customers, nil
}

type memCommerceRepo struct {
	channels  []commerce.Channel
	accounts  []commerce.ChannelAccount
	orders    []commerce.Order
	shipments []commerce.Shipment
}

func (m *memCommerceRepo) CreateChannel(_ context.Context, c *commerce.Channel) error {
	m.channels = append(m.channels, *c)
	return nil
}
func (m *memCommerceRepo) ListChannels(_ context.Context) ([]commerce.Channel, error) {
	return m.channels, nil
}
func (m *memCommerceRepo) CreateChannelAccount(_ context.Context, a *commerce.ChannelAccount) error {
	m.accounts = append(m.accounts, *a)
	return nil
}
func (m *memCommerceRepo) ListChannelAccounts(_ context.Context) ([]commerce.ChannelAccount, error) {
	return m.accounts, nil
}
func (m *memCommerceRepo) CreateOrder(_ context.Context, o *commerce.Order) error {
	m.orders = append(m.orders, *o)
	return nil
}
func (m *memCommerceRepo) ListOrders(_ context.Context) ([]commerce.Order, error) {
	return m.orders, nil
}
func (m *memCommerceRepo) IngestOrder(_ context.Context, o *commerce.Order) error {
	for _, existing := range m.orders {
		if existing.ID == o.ID {
			return nil
		}
	}
	m.orders = append(m.orders, *o)
	return nil
}
func (m *memCommerceRepo) CreateShipment(_ context.Context, s *commerce.Shipment) error {
	m.shipments = append(m.shipments, *s)
	return nil
}
func (m *memCommerceRepo) ListShipments(_ context.Context) ([]commerce.Shipment, error) {
	return m.shipments, nil
}

type memCatalogRepo struct {
	pricing  []catalog.PricingRule
	taxes    []catalog.TaxRule
	payments []catalog.PaymentMethod
}

func (m *memCatalogRepo) CreatePricingRule(_ context.Context, r *catalog.PricingRule) error {
	m.pricing = append(m.pricing, *r)
	return nil
}
func (m *memCatalogRepo) ListPricingRules(_ context.Context) ([]catalog.PricingRule, error) {
	return m.pricing, nil
}
func (m *memCatalogRepo) CreateTaxRule(_ context.Context, r *catalog.TaxRule) error {
	m.taxes = append(m.taxes, *r)
	return nil
}
func (m *memCatalogRepo) ListTaxRules(_ context.Context) ([]catalog.TaxRule, error) {
	return m.taxes, nil
}
func (m *memCatalogRepo) CreatePaymentMethod(_ context.Context, p *catalog.PaymentMethod) error {
	m.payments = append(m.payments, *p)
	return nil
}
func (m *memCatalogRepo) ListPaymentMethods(_ context.Context) ([]catalog.PaymentMethod, error) {
	return m.payments, nil
}

type memInventoryRepo struct {
	items     []inventory.Item
	movements []inventory.Movement
}

func (m *memInventoryRepo) CreateItem(_ context.Context, i *inventory.Item) error {
	m.items = append(m.items, *i)
	return nil
}
func (m *memInventoryRepo) ListItems(_ context.Context) ([]inventory.Item, error) {
	return m.items, nil
}
func (m *memInventoryRepo) PostMovement(_ context.Context, mv *inventory.Movement) error {
	m.movements = append(m.movements, *mv)
	for idx := range m.items {
		if m.items[idx].SkuCode == mv.SkuCode && m.items[idx].BranchID == mv.BranchID {
			m.items[idx].QuantityOnHand = m.items[idx].QuantityOnHand.Add(mv.QuantityDelta)
		}
	}
	return nil
}
func (m *memInventoryRepo) ListMovements(_ context.Context) ([]inventory.Movement, error) {
	return m.movements, nil
}

type postedReturnLine struct {
	line     sales.ReturnLine
	restock  bool
	branchID string
}

type memSalesRepo struct {
	receipts    []sales.Receipt
	lines       []sales.ReceiptLine
	payments    []sales.ReceiptPayment
	returns     map[string]*sales.Return
	returnLines []postedReturnLine
	refunds     []sales.Refund
	writes      int
}

func newMemSalesRepo() *memSalesRepo {
	return &memSalesRepo{returns: make(map[string]*sales.Return)}
}

func (m *memSalesRepo) PostReceipt(_ context.Context, r *sales.Receipt) error {
	m.writes++
	m.receipts = append(m.receipts, *r)
	return nil
}
func (m *memSalesRepo) ListReceipts(_ context.Context) ([]sales.Receipt, error) {
	return m.receipts, nil
}
func (m *memSalesRepo) CreateReceiptLine(_ context.Context, l *sales.ReceiptLine) error {
	m.writes++
	m.lines = append(m.lines, *l)
	return nil
}
func (m *memSalesRepo) ListReceiptLines(_ context.Context) ([]sales.ReceiptLine, error) {
	return m.lines, nil
}
func (m *memSalesRepo) CreateReceiptPayment(_ context.Context, p *sales.ReceiptPayment) error {
	m.writes++
	m.payments = append(m.payments, *p)
	return nil
}
func (m *memSalesRepo) ListReceiptPayments(_ context.Context) ([]sales.ReceiptPayment, error) {
	return m.payments, nil
}
func (m *memSalesRepo) CreateReturn(_ context.Context, r *sales.Return) error {
	m.writes++
	m.returns[r.ID] = r
	return nil
}
func (m *memSalesRepo) ListReturns(_ context.Context) ([]sales.Return, error) {
	out := make([]sales.Return, 0, len(m.returns))
	for _, r := range m.returns {
		out = append(out, *r)
	}
	return out, nil
}
func (m *memSalesRepo) FindReturnByID(_ context.Context, id string) (*sales.Return, error) {
	r, ok := m.returns[id]
	if !ok {
		return nil, sales.ErrReturnNotFound
	}
	return r, nil
}
func (m *memSalesRepo) PostReturnLine(_ context.Context, l *sales.ReturnLine, restock bool, branchID string) error {
	m.writes++
	m.returnLines = append(m.returnLines, postedReturnLine{line: *l, restock: restock, branchID: branchID})
	return nil
}
func (m *memSalesRepo) ListReturnLines(_ context.Context) ([]sales.ReturnLine, error) {
	out := make([]sales.ReturnLine, 0, len(m.returnLines))
	for _, p := range m.returnLines {
		out = append(out, p.line)
	}
	return out, nil
}
func (m *memSalesRepo) CreateRefund(_ context.Context, r *sales.Refund) error {
	m.writes++
	m.refunds = append(m.refunds, *r)
	return nil
}
func (m *memSalesRepo) ListRefunds(_ context.Context) ([]sales.Refund, error) {
	return m.refunds, nil
}

type memTillRepo struct {
	sessions        map[string]*till.Session
	drops           []till.CashDrop
	reasons         []till.VarianceReason
	reconciliations []till.Reconciliation
}

func newMemTillRepo() *memTillRepo {
	return &memTillRepo{sessions: make(map[string]*till.Session)}
}

func (m *memTillRepo) CreateSession(_ context.Context, s *till.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *memTillRepo) ListSessions(_ context.Context) ([]till.Session, error) {
	out := make([]till.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, *s)
	}
	return out, nil
}
func (m *memTillRepo) CloseSession(_ context.Context, c *till.SessionClose) error {
	s, ok := m.sessions[c.SessionID]
	if !ok || s.Status != string(till.SessionStatusOpen) {
		return till.ErrSessionNotOpen
	}
	variance := c.Variance()
	s.ExpectedCashAmount = &c.ExpectedCashAmount
	s.CountedCashAmount = &c.CountedCashAmount
	s.VarianceAmount = &variance
	s.Status = string(till.SessionStatusClosed)
	return nil
}
func (m *memTillRepo) CreateCashDrop(_ context.Context, d *till.CashDrop) error {
	m.drops = append(m.drops, *d)
	return nil
}
func (m *memTillRepo) ListCashDrops(_ context.Context) ([]till.CashDrop, error) {
	return m.drops, nil
}
func (m *memTillRepo) CreateVarianceReason(_ context.Context, r *till.VarianceReason) error {
	m.reasons = append(m.reasons, *r)
	return nil
}
func (m *memTillRepo) ListVarianceReasons(_ context.Context) ([]till.VarianceReason, error) {
	return m.reasons, nil
}
func (m *memTillRepo) CreateReconciliation(_ context.Context, r *till.Reconciliation) error {
	m.reconciliations = append(m.reconciliations, *r)
	return nil
}
func (m *memTillRepo) ListReconciliations(_ context.Context) ([]till.Reconciliation, error) {
	return m.reconciliations, nil
}

type memProcurementRepo struct {
	suppliers   []procurement.Supplier
	orders      []procurement.PurchaseOrder
	orderLines  []procurement.PurchaseOrderLine
	receipts    map[string]*procurement.GoodsReceipt
	receiptRows []procurement.GoodsReceiptLine
}

func newMemProcurementRepo() *memProcurementRepo {
	return &memProcurementRepo{receipts: make(map[string]*procurement.GoodsReceipt)}
}

func (m *memProcurementRepo) CreateSupplier(_ context.Context, s *procurement.Supplier) error {
	m.suppliers = append(m.suppliers, *s)
	return nil
}
func (m *memProcurementRepo) ListSuppliers(_ context.Context) ([]procurement.Supplier, error) {
	return m.suppliers, nil
}
func (m *memProcurementRepo) CreatePurchaseOrder(_ context.Context, o *procurement.PurchaseOrder) error {
	m.orders = append(m.orders, *o)
	return nil
}
func (m *memProcurementRepo) ListPurchaseOrders(_ context.Context) ([]procurement.PurchaseOrder, error) {
	return m.orders, nil
}
func (m *memProcurementRepo) CreatePurchaseOrderLine(_ context.Context, l *procurement.PurchaseOrderLine) error {
	m.orderLines = append(m.orderLines, *l)
	return nil
}
func (m *memProcurementRepo) ListPurchaseOrderLines(_ context.Context) ([]procurement.PurchaseOrderLine, error) {
	return m.orderLines, nil
}
func (m *memProcurementRepo) CreateGoodsReceipt(_ context.Context, g *procurement.GoodsReceipt) error {
	m.receipts[g.ID] = g
	return nil
}
func (m *memProcurementRepo) ListGoodsReceipts(_ context.Context) ([]procurement.GoodsReceipt, error) {
	out := make([]procurement.GoodsReceipt, 0, len(m.receipts))
	for _, g := range m.receipts {
		out = append(out, *g)
	}
	return out, nil
}
func (m *memProcurementRepo) FindGoodsReceiptByID(_ context.Context, id string) (*procurement.GoodsReceipt, error) {
	g, ok := m.receipts[id]
	if !ok {
		return nil, procurement.ErrGoodsReceiptNotFound
	}
	return g, nil
}
func (m *memProcurementRepo) PostGoodsReceiptLines(_ context.Context, _ *procurement.GoodsReceipt, lines []*procurement.GoodsReceiptLine) error {
	for _, l := range lines {
		m.receiptRows = append(m.receiptRows, *l)
	}
	return nil
}
func (m *memProcurementRepo) ListGoodsReceiptLines(_ context.Context) ([]procurement.GoodsReceiptLine, error) {
	return m.receiptRows, nil
}

type memSyncRepo struct {
	entries   []syncoutbox.Entry
	conflicts []syncoutbox.Conflict
}

func (m *memSyncRepo) CreateEntry(_ context.Context, e *syncoutbox.Entry) error {
	m.entries = append(m.entries, *e)
	return nil
}
func (m *memSyncRepo) ListEntries(_ context.Context) ([]syncoutbox.Entry, error) {
	return m.entries, nil
}
func (m *memSyncRepo) CreateConflict(_ context.Context, c *syncoutbox.Conflict) error {
	m.conflicts = append(m.conflicts, *c)
	return nil
}
func (m *memSyncRepo) ListConflicts(_ context.Context) ([]syncoutbox.Conflict, error) {
	return m.conflicts, nil
}

type memAppConfigRepo struct {
	configs map[string]appconfig.Config
}

func newMemAppConfigRepo() *memAppConfigRepo {
	return &memAppConfigRepo{configs: make(map[string]appconfig.Config)}
}

func (m *memAppConfigRepo) Upsert(_ context.Context, c *appconfig.Config) error {
	m.configs[c.KeyName] = *c
	return nil
}
func (m *memAppConfigRepo) List(_ context.Context) ([]appconfig.Config, error) {
	out := make([]appconfig.Config, 0, len(m.configs))
	for _, c := range m.configs {
		out = append(out, c)
	}
	return out, nil
}

type memReportRepo struct {
	summary *report.DayCloseSummary
}

func (m *memReportRepo) DayCloseSummary(_ context.Context, branchID, businessDate string) (*report.DayCloseSummary, error) {
	if m.summary != nil {
		return m.summary, nil
	}
	return &report.DayCloseSummary{
		BranchID:     branchID,
		BusinessDate: businessDate,
		Payments:     []report.PaymentTotal{},
	}, nil
}

type memSeedRepo struct {
	seeded int
}

func (m *memSeedRepo) SeedDemoBranch(_ context.Context) error {
	m.seeded++
	return nil
}

type testEnv struct {
	router      *gin.Engine
	org         *memOrgRepo
	commerce    *memCommerceRepo
	catalog     *memCatalogRepo
	inventory   *memInventoryRepo
	sales       *memSalesRepo
	till        *memTillRepo
	procurement *memProcurementRepo
	sync        *memSyncRepo
	appConfig   *memAppConfigRepo
	seed        *memSeedRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	env := &testEnv{
		org:         &memOrgRepo{},
		commerce:    &memCommerceRepo{},
		catalog:     &memCatalogRepo{},
		inventory:   &memInventoryRepo{},
		sales:       newMemSalesRepo(),
		till:        newMemTillRepo(),
		procurement: newMemProcurementRepo(),
		sync:        &memSyncRepo{},
		appConfig:   newMemAppConfigRepo(),
		seed:        &memSeedRepo{},
	}

	controllers := Controllers{
		Meta:        controller.NewMetaController(nil, "test"),
		Org:         controller.NewOrgController(env.org, log),
		Commerce:    controller.NewCommerceController(env.commerce, log),
		Catalog:     controller.NewCatalogController(env.catalog, log),
		Inventory:   controller.NewInventoryController(env.inventory, log),
		Sales:       controller.NewSalesController(env.sales, log),
		Till:        controller.NewTillController(env.till, log),
		Procurement: controller.NewProcurementController(env.procurement, log),
		Sync:        controller.NewSyncController(env.sync, log),
		AppConfig:   controller.NewAppConfigController(env.appConfig, log),
		Report:      controller.NewReportController(&memReportRepo{}, log),
		Seed:        controller.NewSeedController(env.seed, log),
	}

	router := gin.New()
	SetupRoutes(router, apikey.Config{WriteKey: testWriteKey}, controllers)
	env.router = router
	return env
}

func (e *testEnv) do(method, path, body string, withKey bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if withKey {
		req.Header.Set(apikey.HeaderName, testWriteKey)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é JSON válido: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestWriteWithoutKeyIsRejectedBeforeStore(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/sales-returns", `{"id":"r1","branch_id":"b1","business_date":"2026-08-31"}`, false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("escrita sem chave deve ser 401, status %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Unauthorized" {
		t.Fatalf("erro esperado Unauthorized, obtido %v", body["error"])
	}
	if env.sales.writes != 0 {
		t.Fatalf("requisição barrada não pode tocar o armazenamento (%d escritas)", env.sales.writes)
	}
}

func TestSalesReturnEmptyBodyListsRequiredFields(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/sales-returns", `{}`, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("payload vazio deve ser 400, status %d", w.Code)
	}
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Required fields") {
		t.Fatalf("mensagem deve conter Required fields: %s", msg)
	}
	for _, field := range []string{"id", "branch_id", "business_date"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("mensagem deve nomear %s: %s", field, msg)
		}
	}
	if env.sales.writes != 0 {
		t.Fatal("validação deve falhar antes de tocar o armazenamento")
	}
}

func TestTillCloseEmptyBodyListsRequiredFields(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/till-sessions/close", `{}`, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("payload vazio deve ser 400, status %d", w.Code)
	}
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	for _, field := range []string{"till_session_id", "expected_cash_amount", "counted_cash_amount"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("mensagem deve nomear %s: %s", field, msg)
		}
	}
}

func TestTaxRuleRejectsUnknownTaxMode(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/tax-rules", `{"id":"t1","rule_code":"TR1","tax_mode":"flat","rate_percent":5}`, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("tax_mode inválido deve ser 400, status %d", w.Code)
	}
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "tax_mode") {
		t.Fatalf("mensagem deve nomear tax_mode: %s", msg)
	}
	if len(env.catalog.taxes) != 0 {
		t.Fatal("regra inválida não pode ser gravada")
	}
}

func TestTaxRuleAcceptsInclusive(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/tax-rules", `{"id":"t1","rule_code":"TR1","tax_mode":"inclusive","rate_percent":5}`, true)

	if w.Code != http.StatusCreated {
		t.Fatalf("tax_mode inclusive deve ser aceito, status %d (%s)", w.Code, w.Body.String())
	}
	if len(env.catalog.taxes) != 1 || env.catalog.taxes[0].TaxMode != "inclusive" {
		t.Fatalf("regra deveria estar gravada com tax_mode inclusive")
	}
}

func TestCreateAndListOrgUnits(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/org-units", `{"id":"ou1","unit_type":"branch","code":"BR-1","name":"Filial 1"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("criação deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["ok"] != true || body["id"] != "ou1" {
		t.Fatalf("resposta de criação inesperada: %v", body)
	}
	if env.org.units[0].IsActive != 1 {
		t.Fatalf("is_active omitido deve valer 1, obtido %d", env.org.units[0].IsActive)
	}

	w = env.do(http.MethodGet, "/v1/org-units", "", false)
	if w.Code != http.StatusOK {
		t.Fatalf("listagem deve ser 200, status %d", w.Code)
	}
	list := decodeBody(t, w)
	items, _ := list["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("esperado 1 item, obtidos %d", len(items))
	}
}

func TestMalformedJSONBody(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/org-units", `{"id": `, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("JSON malformado deve ser 400, status %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Invalid JSON body" {
		t.Fatalf("erro esperado Invalid JSON body, obtido %v", body["error"])
	}
}

func TestWebhookIngestIsIdempotent(t *testing.T) {
	env := newTestEnv()
	payload := `{"id": 42, "currency": "USD", "financial_status": "paid", "total_price": "10.00"}`

	w := env.do(http.MethodPost, "/v1/connectors/shopify/order-webhook", payload, true)
	if w.Code != http.StatusAccepted {
		t.Fatalf("webhook deve responder 202, status %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["connector"] != "shopify" || body["ingested_order"] != "SHOPIFY-42" || body["mode"] != "minimal-v1" {
		t.Fatalf("resposta de webhook inesperada: %v", body)
	}

	// Repetição do mesmo webhook não duplica o pedido e continua 202
	w = env.do(http.MethodPost, "/v1/connectors/shopify/order-webhook", payload, true)
	if w.Code != http.StatusAccepted {
		t.Fatalf("webhook repetido deve responder 202, status %d", w.Code)
	}
	if len(env.commerce.orders) != 1 {
		t.Fatalf("ingestão deve ser idempotente, %d pedidos gravados", len(env.commerce.orders))
	}
}

func TestReturnLineRequiresExistingParent(t *testing.T) {
	env := newTestEnv()
	line := `{"id":"rl1","sales_return_id":"missing","sku_code":"SKU-1","quantity":2}`

	w := env.do(http.MethodPost, "/v1/sales-return-lines", line, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("devolução pai ausente deve ser 400, status %d", w.Code)
	}
	if len(env.sales.returnLines) != 0 {
		t.Fatal("nenhuma linha pode ser gravada sem a devolução pai")
	}
}

func TestReturnLineUsesParentBranchAndRestocks(t *testing.T) {
	env := newTestEnv()
	env.sales.returns["ret1"] = &sales.Return{ID: "ret1", BranchID: "branch-9", BusinessDate: "2026-08-31"}

	w := env.do(http.MethodPost, "/v1/sales-return-lines", `{"id":"rl1","sales_return_id":"ret1","sku_code":"SKU-1","quantity":2}`, true)

	if w.Code != http.StatusCreated {
		t.Fatalf("linha válida deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}
	if len(env.sales.returnLines) != 1 {
		t.Fatalf("esperada 1 linha, obtidas %d", len(env.sales.returnLines))
	}
	posted := env.sales.returnLines[0]
	if !posted.restock {
		t.Fatal("restock omitido deve valer true")
	}
	if posted.branchID != "branch-9" {
		t.Fatalf("branch deve vir da devolução pai, obtido %s", posted.branchID)
	}
}

func TestTillCloseLifecycle(t *testing.T) {
	env := newTestEnv()
	opening := decimal.RequireFromString("100.00")
	env.till.sessions["ts1"] = &till.Session{
		ID:                 "ts1",
		TillID:             "till-1",
		BranchID:           "b1",
		OpeningFloatAmount: opening,
		Status:             string(till.SessionStatusOpen),
	}

	closeBody := `{"till_session_id":"ts1","expected_cash_amount":"350.00","counted_cash_amount":"348.00"}`
	w := env.do(http.MethodPost, "/v1/till-sessions/close", closeBody, true)
	if w.Code != http.StatusOK {
		t.Fatalf("fechamento deve ser 200, status %d (%s)", w.Code, w.Body.String())
	}

	s := env.till.sessions["ts1"]
	if s.Status != string(till.SessionStatusClosed) {
		t.Fatalf("sessão deveria estar fechada, status %s", s.Status)
	}
	if s.VarianceAmount == nil || s.VarianceAmount.String() != "-2" {
		t.Fatalf("variância esperada -2, obtida %v", s.VarianceAmount)
	}

	// Segundo fechamento é rejeitado
	w = env.do(http.MethodPost, "/v1/till-sessions/close", closeBody, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("refechamento deve ser 400, status %d", w.Code)
	}
}

func TestDayCloseSummaryRequiresParams(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/v1/day-close-summary", "", false)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("sem parâmetros deve ser 400, status %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Query params required: branch_id, business_date" {
		t.Fatalf("mensagem inesperada: %v", body["error"])
	}

	w = env.do(http.MethodGet, "/v1/day-close-summary?branch_id=b1&business_date=2026-08-31", "", false)
	if w.Code != http.StatusOK {
		t.Fatalf("com parâmetros deve ser 200, status %d (%s)", w.Code, w.Body.String())
	}
	summary := decodeBody(t, w)
	if summary["ok"] != true || summary["branch_id"] != "b1" {
		t.Fatalf("resposta inesperada: %v", summary)
	}
}

func TestBranchReconciliationDerivesStatus(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/branch-reconciliations",
		`{"id":"rec1","branch_id":"b1","business_date":"2026-08-31","expected_sales_amount":"100.00","counted_cash_amount":"90.00"}`, true)

	if w.Code != http.StatusCreated {
		t.Fatalf("conferência deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}
	rec := env.till.reconciliations[0]
	if rec.Status != string(till.ReconciliationInvestigate) {
		t.Fatalf("status esperado investigate, obtido %s", rec.Status)
	}
	if rec.VarianceAmount.String() != "-10" {
		t.Fatalf("variância esperada -10, obtida %s", rec.VarianceAmount.String())
	}
}

func TestGoodsReceiptLinesRequireExistingReceipt(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/goods-receipt-lines",
		`{"goods_receipt_id":"missing","lines":[{"id":"l1","purchase_order_line_id":"pol1","sku_code":"SKU-1","received_qty":5,"accepted_qty":5}]}`, true)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("GRN ausente deve ser 400, status %d", w.Code)
	}
	if len(env.procurement.receiptRows) != 0 {
		t.Fatal("nenhuma linha pode ser gravada sem o GRN pai")
	}
}

func TestInventoryMovementAdjustsBalance(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/inventory-items",
		`{"id":"it1","sku_code":"SKU-1","branch_id":"b1","quantity_on_hand":"10"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("item deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}

	w = env.do(http.MethodPost, "/v1/inventory-movements",
		`{"id":"mv1","sku_code":"SKU-1","branch_id":"b1","movement_type":"adjustment","quantity_delta":"-3"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("movimento deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}
	if len(env.inventory.movements) != 1 {
		t.Fatalf("esperado exatamente 1 lançamento no razão, obtidos %d", len(env.inventory.movements))
	}
	if got := env.inventory.items[0].QuantityOnHand.String(); got != "7" {
		t.Fatalf("saldo esperado 7 após delta -3, obtido %s", got)
	}

	// Movimento sem item correspondente ainda entra no razão, sem tocar saldos
	w = env.do(http.MethodPost, "/v1/inventory-movements",
		`{"id":"mv2","sku_code":"SKU-404","branch_id":"b1","movement_type":"adjustment","quantity_delta":"5"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("movimento sem item deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}
	if len(env.inventory.movements) != 2 {
		t.Fatalf("esperados 2 lançamentos no razão, obtidos %d", len(env.inventory.movements))
	}
	if got := env.inventory.items[0].QuantityOnHand.String(); got != "7" {
		t.Fatalf("saldo não pode mudar sem item correspondente, obtido %s", got)
	}
}

func TestSeedDemoBranch(t *testing.T) {
	env := newTestEnv()

	// Repetir o seed continua respondendo 201: a escrita é insert-if-absent
	for i := 0; i < 2; i++ {
		w := env.do(http.MethodPost, "/v1/seed/demo-branch", "", true)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed %d deve ser 201, status %d (%s)", i+1, w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["seeded"] != true {
			t.Fatalf("resposta deve indicar seeded: %v", body)
		}
	}
	if env.seed.seeded != 2 {
		t.Fatalf("seed deveria ter executado duas vezes, executou %d", env.seed.seeded)
	}
}

func TestAppConfigUpsert(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/v1/app-config", `{"key_name":"pos.mode","value_json":"\"offline\""}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("upsert deve ser 201, status %d (%s)", w.Code, w.Body.String())
	}

	// Regravar a mesma chave sobrescreve sem erro
	w = env.do(http.MethodPost, "/v1/app-config", `{"key_name":"pos.mode","value_json":"\"online\""}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("upsert repetido deve ser 201, status %d", w.Code)
	}
	if len(env.appConfig.configs) != 1 {
		t.Fatalf("upsert não pode duplicar chaves: %d", len(env.appConfig.configs))
	}
	if env.appConfig.configs["pos.mode"].ValueJSON != `"online"` {
		t.Fatalf("último valor deve vencer: %s", env.appConfig.configs["pos.mode"].ValueJSON)
	}
}

func TestUnknownRouteReturns404Envelope(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/nope", "", false)

	if w.Code != http.StatusNotFound {
		t.Fatalf("rota desconhecida deve ser 404, status %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false || body["error"] != "Not Found" {
		t.Fatalf("envelope de 404 inesperado: %v", body)
	}
	if body["message"] != "Use /v1 for versioned endpoints" {
		t.Fatalf("mensagem de 404 inesperada: %v", body["message"])
	}
}

func TestRouteIndex(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/v1", "", false)

	if w.Code != http.StatusOK {
		t.Fatalf("índice deve ser 200, status %d", w.Code)
	}
	body := decodeBody(t, w)
	routes, _ := body["routes"].([]interface{})
	if len(routes) == 0 {
		t.Fatal("índice deve listar as rotas")
	}
}
