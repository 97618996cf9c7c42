package acceptance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/easymenu/internal/api"
	"github.com/aaravmahajanofficial/easymenu/internal/api/handlers"
	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/cart"
	"github.com/aaravmahajanofficial/easymenu/internal/catalog"
	"github.com/aaravmahajanofficial/easymenu/internal/config"
	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/internal/money"
	service "github.com/aaravmahajanofficial/easymenu/internal/services"
	"github.com/aaravmahajanofficial/easymenu/internal/utils/response"
	"github.com/cucumber/godog"
)

const jwtKey = "acceptance-secret"

// memoryStore keeps the catalog document in memory. Load hands out a deep
// copy so services cannot mutate the stored state without Save.
type memoryStore struct {
	mu    sync.Mutex
	state models.CatalogState
}

func (s *memoryStore) Load(ctx context.Context) models.CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return deepCopy(s.state)
}

func (s *memoryStore) Save(ctx context.Context, state models.CatalogState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog.Normalize(&state)
	s.state = deepCopy(state)
}

func (s *memoryStore) update(fn func(state *models.CatalogState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
}

func deepCopy(state models.CatalogState) models.CatalogState {
	b, err := json.Marshal(state)
	if err != nil {
		panic(err)
	}

	var out models.CatalogState
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}

	return out
}

// memorySessions never rate limits and remembers revoked sessions.
type memorySessions struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (m *memorySessions) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	return true, 5, 0, nil
}

func (m *memorySessions) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revoked[sessionID] = true
	return nil
}

func (m *memorySessions) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.revoked[sessionID], nil
}

type menuTestContext struct {
	store    *memoryStore
	sessions *memorySessions
	router   http.Handler
	now      time.Time
	slug     string
	nextID   int

	cart     models.Cart
	token    string
	status   int
	envelope envelope
}

type envelope struct {
	Success bool                    `json:"success"`
	Data    json.RawMessage         `json:"data"`
	Error   *response.ErrorResponse `json:"error"`
}

var clockDays = map[string]time.Time{
	"Monday":    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	"Tuesday":   time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
	"Wednesday": time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	"Thursday":  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	"Friday":    time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	"Saturday":  time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
	"Sunday":    time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
}

func (c *menuTestContext) reset() {
	c.store = &memoryStore{state: catalog.DefaultState()}
	c.sessions = &memorySessions{revoked: make(map[string]bool)}
	c.now = clockDays["Monday"].Add(12 * time.Hour)
	c.slug = c.store.state.Business.Slug
	c.nextID = 0
	c.cart = models.Cart{Lines: []models.CartLine{}}
	c.token = ""
	c.status = 0
	c.envelope = envelope{}

	opts := service.MenuOptions{
		BaseURL:     "https://cardapio.example.com/",
		CountryCode: "55",
		Location:    time.UTC,
		MergePolicy: cart.MergeIdentical,
		Now:         func() time.Time { return c.now },
	}

	sessionService := service.NewSessionService(c.sessions, config.Security{
		JWTKey:     jwtKey,
		SessionTTL: time.Hour,
	})

	router := api.NewRouter(api.Handlers{
		Menu:    handlers.NewMenuHandler(service.NewMenuService(c.store, opts)),
		Cart:    handlers.NewCartHandler(service.NewCartService(c.store, opts)),
		Order:   handlers.NewOrderHandler(service.NewOrderService(c.store, opts)),
		Share:   handlers.NewShareHandler(service.NewShareService(c.store, opts)),
		Session: handlers.NewSessionHandler(sessionService),
		Catalog: handlers.NewCatalogHandler(service.NewCatalogService(c.store, opts)),
	}, middleware.NewAuthMiddleware([]byte(jwtKey), c.sessions), middleware.NewRateLimiter(1000, 1000))

	c.router = middleware.Logging(router)
}

func (c *menuTestContext) id(prefix string) string {
	c.nextID++
	return fmt.Sprintf("%s%d", prefix, c.nextID)
}

func (c *menuTestContext) do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)

	c.status = rr.Code
	c.envelope = envelope{}
	if err := json.Unmarshal(rr.Body.Bytes(), &c.envelope); err != nil {
		return fmt.Errorf("response is not a JSON envelope: %w: %s", err, rr.Body.String())
	}

	return nil
}

func (c *menuTestContext) data(v any) error {
	if !c.envelope.Success {
		return fmt.Errorf("expected a successful response, got %d: %+v", c.status, c.envelope.Error)
	}

	return json.Unmarshal(c.envelope.Data, v)
}

func (c *menuTestContext) productByName(name string) (models.Product, error) {
	for _, p := range c.store.Load(context.Background()).Products {
		if p.Name == name {
			return p, nil
		}
	}

	return models.Product{}, fmt.Errorf("no product named %q", name)
}

// Given

func (c *menuTestContext) theStoreWithWhatsAppAndADeliveryFeeOf(slug, whatsapp, fee string) error {
	c.slug = slug
	c.store.update(func(state *models.CatalogState) {
		state.Business.Slug = slug
		state.Business.Name = "Pizzaria Bella"
		state.Business.WhatsApp = whatsapp
		state.Business.Settings.DeliveryFee = money.Parse(fee)
	})

	return nil
}

func (c *menuTestContext) addCategory(state *models.CatalogState, name string) string {
	for _, cat := range state.Categories {
		if cat.Name == name {
			return cat.ID
		}
	}

	id := c.id("c")
	state.Categories = append(state.Categories, models.Category{
		ID:         id,
		BusinessID: state.Business.ID,
		Name:       name,
		Order:      len(state.Categories),
		IsActive:   true,
	})

	return id
}

func (c *menuTestContext) aCategoryWithTheProductInSizes(category, product string, sizes *godog.Table) error {
	var variations []models.Variation
	for _, row := range sizes.Rows[1:] {
		variations = append(variations, models.Variation{
			ID:    c.id("v"),
			Name:  row.Cells[0].Value,
			Price: money.Parse(row.Cells[1].Value),
		})
	}

	c.store.update(func(state *models.CatalogState) {
		state.Products = append(state.Products, models.Product{
			ID:          c.id("p"),
			CategoryID:  c.addCategory(state, category),
			Name:        product,
			IsAvailable: true,
			Variations:  variations,
		})
	})

	return nil
}

func (c *menuTestContext) theProductHasTheOptionGroupAllowingToChoices(product, group string, min, max int, options *godog.Table) error {
	g := models.OptionGroup{ID: c.id("g"), Name: group, MinChoices: min, MaxChoices: max}
	for _, row := range options.Rows[1:] {
		g.Options = append(g.Options, models.Option{
			ID:    c.id("o"),
			Name:  row.Cells[0].Value,
			Price: money.Parse(row.Cells[1].Value),
		})
	}

	found := false
	c.store.update(func(state *models.CatalogState) {
		for i := range state.Products {
			if state.Products[i].Name == product {
				state.Products[i].OptionGroups = append(state.Products[i].OptionGroups, g)
				found = true
			}
		}
	})
	if !found {
		return fmt.Errorf("no product named %q", product)
	}

	return nil
}

func (c *menuTestContext) aCategoryWithTheProductPriced(category, product, price string) error {
	c.store.update(func(state *models.CatalogState) {
		state.Products = append(state.Products, models.Product{
			ID:          c.id("p"),
			CategoryID:  c.addCategory(state, category),
			Name:        product,
			Price:       money.Parse(price),
			IsAvailable: true,
		})
	})

	return nil
}

func (c *menuTestContext) theClockReads(day, clock string) error {
	midnight, ok := clockDays[day]
	if !ok {
		return fmt.Errorf("unknown weekday %q", day)
	}

	t, err := time.Parse("15:04", clock)
	if err != nil {
		return err
	}

	c.now = midnight.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	return nil
}

func (c *menuTestContext) theOperatorIsLoggedIn() error {
	err := c.do(http.MethodPost, "/api/v1/session", models.LoginRequest{
		Email:    "operator@example.com",
		Password: "secret",
	})
	if err != nil {
		return err
	}

	var login models.LoginResponse
	if err := c.data(&login); err != nil {
		return err
	}
	if login.Token == "" {
		return fmt.Errorf("login returned no token")
	}

	c.token = login.Token
	return nil
}

// When

func (c *menuTestContext) iOpenTheMenu(slug string) error {
	return c.do(http.MethodGet, "/api/v1/menu/"+slug, nil)
}

func (c *menuTestContext) addToCart(product string, input models.SelectionInput) error {
	p, err := c.productByName(product)
	if err != nil {
		return err
	}

	if input.Options == nil {
		input.Options = []models.OptionRef{}
	}

	err = c.do(http.MethodPost, "/api/v1/menu/"+c.slug+"/cart/lines", models.AddLineRequest{
		Cart:      c.cart,
		ProductID: p.ID,
		Selection: input,
	})
	if err != nil {
		return err
	}

	return c.keepCart()
}

// keepCart carries the returned cart into the next request, like the browser does.
func (c *menuTestContext) keepCart() error {
	if !c.envelope.Success {
		return nil
	}

	var quote models.CartQuote
	if err := c.data(&quote); err != nil {
		return err
	}

	c.cart = quote.Cart
	return nil
}

func (c *menuTestContext) iAddToTheCart(product string) error {
	return c.addToCart(product, models.SelectionInput{})
}

func (c *menuTestContext) iAddInSizeWithToTheCart(product, size, option string) error {
	p, err := c.productByName(product)
	if err != nil {
		return err
	}

	var input models.SelectionInput
	for _, v := range p.Variations {
		if v.Name == size {
			input.VariationID = v.ID
		}
	}
	for _, g := range p.OptionGroups {
		for _, o := range g.Options {
			if o.Name == option {
				input.Options = append(input.Options, models.OptionRef{GroupID: g.ID, OptionID: o.ID})
			}
		}
	}

	return c.addToCart(product, input)
}

func (c *menuTestContext) iSetTheQuantityOfLineTo(index, quantity int) error {
	path := fmt.Sprintf("/api/v1/menu/%s/cart/lines/%d", c.slug, index)
	if err := c.do(http.MethodPatch, path, models.UpdateLineRequest{Cart: c.cart, Quantity: &quantity}); err != nil {
		return err
	}

	return c.keepCart()
}

func (c *menuTestContext) iCheckOut() error {
	return c.do(http.MethodPost, "/api/v1/menu/"+c.slug+"/checkout", models.CartRequest{Cart: c.cart})
}

func (c *menuTestContext) theOperatorRequestsTheCatalog() error {
	return c.do(http.MethodGet, "/api/v1/admin/catalog", nil)
}

func (c *menuTestContext) theOperatorCreatesTheCategory(name string) error {
	return c.do(http.MethodPost, "/api/v1/admin/categories", models.CategoryRequest{Name: name})
}

func (c *menuTestContext) theOperatorCreatesTheProductPriced(name, price string) error {
	categoryID := "missing"
	if categories := c.store.Load(context.Background()).Categories; len(categories) > 0 {
		categoryID = categories[0].ID
	}

	return c.do(http.MethodPost, "/api/v1/admin/products", models.ProductRequest{
		CategoryID: categoryID,
		Name:       name,
		Price:      money.Parse(price),
	})
}

func (c *menuTestContext) theOperatorTogglesTheAvailabilityOf(product string) error {
	p, err := c.productByName(product)
	if err != nil {
		return err
	}

	return c.do(http.MethodPatch, "/api/v1/admin/products/"+p.ID+"/availability", nil)
}

func (c *menuTestContext) theOperatorLogsOut() error {
	return c.do(http.MethodDelete, "/api/v1/session", nil)
}

// Then

func (c *menuTestContext) theResponseStatusIs(status int) error {
	if c.status != status {
		return fmt.Errorf("expected status %d, got %d: %+v", status, c.status, c.envelope.Error)
	}

	return nil
}

func (c *menuTestContext) theErrorCodeIs(code string) error {
	if c.envelope.Error == nil {
		return fmt.Errorf("expected error %s, got a successful response", code)
	}
	if c.envelope.Error.Code != code {
		return fmt.Errorf("expected error %s, got %s", code, c.envelope.Error.Code)
	}

	return nil
}

func (c *menuTestContext) theErrorMessageIs(message string) error {
	if c.envelope.Error == nil {
		return fmt.Errorf("expected error %q, got a successful response", message)
	}
	if c.envelope.Error.Message != message {
		return fmt.Errorf("expected error %q, got %q", message, c.envelope.Error.Message)
	}

	return nil
}

func (c *menuTestContext) theMenuIsOpen() error {
	var menu models.MenuView
	if err := c.data(&menu); err != nil {
		return err
	}
	if !menu.IsOpen {
		return fmt.Errorf("expected the menu to be open")
	}

	return nil
}

func (c *menuTestContext) findOnMenu(name string) (*models.MenuProduct, error) {
	var menu models.MenuView
	if err := c.data(&menu); err != nil {
		return nil, err
	}

	for _, section := range menu.Sections {
		for i := range section.Products {
			if section.Products[i].Name == name {
				return &section.Products[i], nil
			}
		}
	}

	return nil, nil
}

func (c *menuTestContext) theMenuListsFrom(name, price string) error {
	p, err := c.findOnMenu(name)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%q is not on the menu", name)
	}
	if p.DisplayPriceFormatted != price {
		return fmt.Errorf("expected %q from %s, got %s", name, price, p.DisplayPriceFormatted)
	}

	return nil
}

func (c *menuTestContext) theMenuDoesNotList(name string) error {
	p, err := c.findOnMenu(name)
	if err != nil {
		return err
	}
	if p != nil {
		return fmt.Errorf("%q should not be on the menu", name)
	}

	return nil
}

func (c *menuTestContext) theCartHasLinesAndTheTotalIs(lines int, total string) error {
	var quote models.CartQuote
	if err := c.data(&quote); err != nil {
		return err
	}
	if len(quote.Cart.Lines) != lines {
		return fmt.Errorf("expected %d lines, got %d", lines, len(quote.Cart.Lines))
	}
	if quote.TotalFormatted != total {
		return fmt.Errorf("expected total %s, got %s", total, quote.TotalFormatted)
	}

	return nil
}

func (c *menuTestContext) theOrderMessageIs(doc *godog.DocString) error {
	var checkout models.CheckoutResponse
	if err := c.data(&checkout); err != nil {
		return err
	}
	if checkout.Message != doc.Content {
		return fmt.Errorf("unexpected order message:\n%s\nwant:\n%s", checkout.Message, doc.Content)
	}

	return nil
}

func (c *menuTestContext) theWhatsAppLinkStartsWith(prefix string) error {
	var checkout models.CheckoutResponse
	if err := c.data(&checkout); err != nil {
		return err
	}
	if !strings.HasPrefix(checkout.WhatsAppURL, prefix) {
		return fmt.Errorf("expected link to start with %s, got %s", prefix, checkout.WhatsAppURL)
	}

	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &menuTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the store "([^"]*)" with WhatsApp "([^"]*)" and a delivery fee of "([^"]*)"$`, tc.theStoreWithWhatsAppAndADeliveryFeeOf)
	ctx.Step(`^a category "([^"]*)" with the product "([^"]*)" in sizes:$`, tc.aCategoryWithTheProductInSizes)
	ctx.Step(`^the product "([^"]*)" has the option group "([^"]*)" allowing (\d+) to (\d+) choices:$`, tc.theProductHasTheOptionGroupAllowingToChoices)
	ctx.Step(`^a category "([^"]*)" with the product "([^"]*)" priced "([^"]*)"$`, tc.aCategoryWithTheProductPriced)
	ctx.Step(`^the clock reads (\w+) (\d{2}:\d{2})$`, tc.theClockReads)
	ctx.Step(`^the operator is logged in$`, tc.theOperatorIsLoggedIn)

	// When steps
	ctx.Step(`^I open the menu "([^"]*)"$`, tc.iOpenTheMenu)
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I add "([^"]*)" in size "([^"]*)" with "([^"]*)" to the cart$`, tc.iAddInSizeWithToTheCart)
	ctx.Step(`^I set the quantity of line (\d+) to (\d+)$`, tc.iSetTheQuantityOfLineTo)
	ctx.Step(`^I check out$`, tc.iCheckOut)
	ctx.Step(`^the operator requests the catalog$`, tc.theOperatorRequestsTheCatalog)
	ctx.Step(`^the operator creates the category "([^"]*)"$`, tc.theOperatorCreatesTheCategory)
	ctx.Step(`^the operator creates the product "([^"]*)" priced "([^"]*)"$`, tc.theOperatorCreatesTheProductPriced)
	ctx.Step(`^the operator toggles the availability of "([^"]*)"$`, tc.theOperatorTogglesTheAvailabilityOf)
	ctx.Step(`^the operator logs out$`, tc.theOperatorLogsOut)

	// Then steps
	ctx.Step(`^the response status is (\d+)$`, tc.theResponseStatusIs)
	ctx.Step(`^the error code is "([^"]*)"$`, tc.theErrorCodeIs)
	ctx.Step(`^the error message is "([^"]*)"$`, tc.theErrorMessageIs)
	ctx.Step(`^the menu is open$`, tc.theMenuIsOpen)
	ctx.Step(`^the menu lists "([^"]*)" from "([^"]*)"$`, tc.theMenuListsFrom)
	ctx.Step(`^the menu does not list "([^"]*)"$`, tc.theMenuDoesNotList)
	ctx.Step(`^the cart has (\d+) lines and the total is "([^"]*)"$`, tc.theCartHasLinesAndTheTotalIs)
	ctx.Step(`^the order message is:$`, tc.theOrderMessageIs)
	ctx.Step(`^the WhatsApp link starts with "([^"]*)"$`, tc.theWhatsAppLinkStartsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
