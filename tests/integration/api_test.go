package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "github.com/Bhatia06/MEWallet/internal/adapter/http/handler"
	redisStorage "github.com/Bhatia06/MEWallet/internal/adapter/storage/redis"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/internal/notify"
	"github.com/Bhatia06/MEWallet/internal/scheduler"
	"github.com/Bhatia06/MEWallet/internal/service"
	"github.com/Bhatia06/MEWallet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testApp wires the full application stack over in-memory storage: the real
// HTTP layer, middleware, services, hub, purger, and a miniredis-backed OTP
// store. Only postgres itself is replaced.
type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	store       *memStore
	workflowSvc ports.WorkflowService
	purger      *scheduler.Purger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.Nop()
	store := newMemStore()

	merchantRepo := &inMemoryMerchantRepo{s: store}
	userRepo := &inMemoryUserRepo{s: store}
	linkRepo := &inMemoryLinkRepo{s: store}
	txRepo := &inMemoryTransactionRepo{s: store}
	requestRepo := &inMemoryRequestRepo{s: store}
	reminderRepo := &inMemoryReminderRepo{s: store}
	transactor := &inMemoryTransactor{}
	otpStore := redisStorage.NewOTPStore(rdb)

	hub := notify.NewHub(log)
	purger := scheduler.NewPurger(requestRepo, time.Minute, log)

	hashSvc := service.NewBcryptHashServiceWithCost(bcrypt.MinCost)
	tokenSvc := service.NewJWTTokenService("integration-test-secret", time.Hour, "mewallet-test")

	authSvc := service.NewAuthService(merchantRepo, userRepo, linkRepo, txRepo, requestRepo, transactor, hashSvc, tokenSvc, log)
	ledgerSvc := service.NewLedgerService(linkRepo, txRepo, transactor, hashSvc, hub, log)
	workflowSvc := service.NewWorkflowService(requestRepo, linkRepo, txRepo, merchantRepo, userRepo, transactor, hashSvc, hub, purger, log)
	reminderSvc := service.NewReminderService(reminderRepo, linkRepo, hub, log)
	otpSvc := service.NewOTPService(otpStore, 5*time.Minute, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		WorkflowSvc:    workflowSvc,
		ReminderSvc:    reminderSvc,
		OTPSvc:         otpSvc,
		TokenSvc:       tokenSvc,
		Hub:            hub,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		purger.Stop()
	})

	return &testApp{
		server:      server,
		redis:       mr,
		store:       store,
		workflowSvc: workflowSvc,
		purger:      purger,
	}
}

// do issues a JSON request with an optional bearer token and decodes the envelope.
func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

// registerMerchant registers a merchant and returns (merchantID, token).
func (a *testApp) registerMerchant(t *testing.T, phone string) (string, string) {
	t.Helper()
	code, resp := a.do(t, http.MethodPost, "/api/v1/merchants/register", "", map[string]string{
		"store_name": "Corner Store",
		"phone":      phone,
		"password":   "merchant-pass-1",
	})
	require.Equal(t, http.StatusCreated, code)
	merchantID := resp["data"].(map[string]interface{})["merchant_id"].(string)

	code, resp = a.do(t, http.MethodPost, "/api/v1/merchants/login", "", map[string]string{
		"phone":    phone,
		"password": "merchant-pass-1",
	})
	require.Equal(t, http.StatusOK, code)
	token := resp["data"].(map[string]interface{})["token"].(string)
	return merchantID, token
}

// registerUser registers a user and returns (userID, token).
func (a *testApp) registerUser(t *testing.T, name string) (string, string) {
	t.Helper()
	code, resp := a.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"name":     name,
		"password": "user-pass-123",
	})
	require.Equal(t, http.StatusCreated, code)
	userID := resp["data"].(map[string]interface{})["user_id"].(string)

	code, resp = a.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"user_id":  userID,
		"password": "user-pass-123",
	})
	require.Equal(t, http.StatusOK, code)
	token := resp["data"].(map[string]interface{})["token"].(string)
	return userID, token
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	merchantID, merchantToken := app.registerMerchant(t, "5550000001")
	assert.Regexp(t, `^MR[0-9A-F]{6}$`, merchantID)
	assert.NotEmpty(t, merchantToken)

	userID, userToken := app.registerUser(t, "Asha")
	assert.Regexp(t, `^UR[0-9A-F]{6}$`, userID)
	assert.NotEmpty(t, userToken)

	// Duplicate phone is rejected
	code, resp := app.do(t, http.MethodPost, "/api/v1/merchants/register", "", map[string]string{
		"store_name": "Copycat",
		"phone":      "5550000001",
		"password":   "merchant-pass-1",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "AUTH_004", resp["error_code"])

	// Wrong password is generic
	code, resp = app.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"user_id":  userID,
		"password": "nope-nope-nope",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_001", resp["error_code"])
}

func TestIntegration_LedgerLifecycle(t *testing.T) {
	app := newTestApp(t)

	merchantID, merchantToken := app.registerMerchant(t, "5550000002")
	userID, userToken := app.registerUser(t, "Bela")

	// Merchant creates the link with an opening balance
	code, resp := app.do(t, http.MethodPost, "/api/v1/link/create", merchantToken, map[string]interface{}{
		"user_id":         userID,
		"pin":             "4321",
		"initial_balance": 500,
	})
	require.Equal(t, http.StatusCreated, code)
	assert.EqualValues(t, 500, resp["data"].(map[string]interface{})["balance"])

	// Creating it again fails
	code, resp = app.do(t, http.MethodPost, "/api/v1/link/create", merchantToken, map[string]interface{}{
		"user_id":         userID,
		"pin":             "4321",
		"initial_balance": 0,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "LNK_002", resp["error_code"])

	// User tops up through the shared PIN
	code, resp = app.do(t, http.MethodPost, "/api/v1/link/add-balance", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"user_id":     userID,
		"amount":      250,
		"pin":         "4321",
	})
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 750, resp["data"].(map[string]interface{})["balance_after"])

	// Purchase with a wrong PIN bounces without touching the balance
	code, resp = app.do(t, http.MethodPost, "/api/v1/link/purchase", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"user_id":     userID,
		"amount":      100,
		"pin":         "9999",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "LNK_003", resp["error_code"])

	// Purchase with the right PIN debits
	code, resp = app.do(t, http.MethodPost, "/api/v1/link/purchase", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"user_id":     userID,
		"amount":      100,
		"pin":         "4321",
	})
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 650, resp["data"].(map[string]interface{})["balance_after"])

	// Overdraft is refused
	code, resp = app.do(t, http.MethodPost, "/api/v1/link/purchase", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"user_id":     userID,
		"amount":      100000,
		"pin":         "4321",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "LNK_004", resp["error_code"])

	// Balance readable by either side
	code, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/link/balance/%s/%s", merchantID, userID), merchantToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 650, resp["data"].(map[string]interface{})["balance"])

	// The audit trail has credit, credit, purchase
	code, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/link/transactions/%s/%s", merchantID, userID), userToken, nil)
	require.Equal(t, http.StatusOK, code)
	items := resp["data"].([]interface{})
	assert.Len(t, items, 3)

	// A third party cannot read the pair
	_, strangerToken := app.registerUser(t, "Snoop")
	code, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/link/balance/%s/%s", merchantID, userID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "AUTH_003", resp["error_code"])
}

func TestIntegration_LinkRequestWorkflow(t *testing.T) {
	app := newTestApp(t)

	merchantID, merchantToken := app.registerMerchant(t, "5550000003")
	userID, userToken := app.registerUser(t, "Chand")

	// User proposes a link
	code, resp := app.do(t, http.MethodPost, "/api/v1/link-requests/create", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"pin":         "1234",
	})
	require.Equal(t, http.StatusCreated, code)
	reqID := int64(resp["data"].(map[string]interface{})["id"].(float64))

	// Second proposal while one is pending is refused
	code, resp = app.do(t, http.MethodPost, "/api/v1/link-requests/create", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"pin":         "1234",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "REQ_001", resp["error_code"])

	// Merchant sees it pending
	code, resp = app.do(t, http.MethodGet, "/api/v1/link-requests/merchant/"+merchantID, merchantToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp["data"].([]interface{}), 1)

	// A user token cannot accept
	code, _ = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/link-requests/accept/%d", reqID), userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Merchant accepts; the link materialises at zero balance
	code, _ = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/link-requests/accept/%d", reqID), merchantToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/link/balance/%s/%s", merchantID, userID), userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, resp["data"].(map[string]interface{})["balance"])

	// Accepting twice reports already processed
	code, resp = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/link-requests/accept/%d", reqID), merchantToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "REQ_002", resp["error_code"])

	// The proposed PIN now gates mutations
	code, resp = app.do(t, http.MethodPost, "/api/v1/link/add-balance", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"user_id":     userID,
		"amount":      100,
		"pin":         "1234",
	})
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 100, resp["data"].(map[string]interface{})["balance_after"])
}

func TestIntegration_PayRequestWorkflow(t *testing.T) {
	app := newTestApp(t)

	_, merchantToken := app.registerMerchant(t, "5550000004")
	userID, userToken := app.registerUser(t, "Dev")

	// Link with funds
	code, _ := app.do(t, http.MethodPost, "/api/v1/link/create", merchantToken, map[string]interface{}{
		"user_id":         userID,
		"pin":             "1234",
		"initial_balance": 500,
	})
	require.Equal(t, http.StatusCreated, code)

	// Merchant proposes a debit
	code, resp := app.do(t, http.MethodPost, "/api/v1/pay-requests/create", merchantToken, map[string]interface{}{
		"user_id":     userID,
		"amount":      300,
		"description": "groceries",
	})
	require.Equal(t, http.StatusCreated, code)
	reqID := int64(resp["data"].(map[string]interface{})["id"].(float64))

	// User sees it
	code, resp = app.do(t, http.MethodGet, "/api/v1/pay-requests/user/"+userID, userToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp["data"].([]interface{}), 1)

	// Wrong PIN on accept is refused
	code, resp = app.do(t, http.MethodPost, "/api/v1/pay-requests/accept", userToken, map[string]interface{}{
		"request_id": reqID,
		"pin":        "9999",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "LNK_003", resp["error_code"])

	// Right PIN debits
	code, resp = app.do(t, http.MethodPost, "/api/v1/pay-requests/accept", userToken, map[string]interface{}{
		"request_id": reqID,
		"pin":        "1234",
	})
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 200, resp["data"].(map[string]interface{})["balance_after"])
}

func TestIntegration_RejectKindIsScoped(t *testing.T) {
	app := newTestApp(t)

	merchantID, merchantToken := app.registerMerchant(t, "5550000005")
	_, userToken := app.registerUser(t, "Esha")

	code, resp := app.do(t, http.MethodPost, "/api/v1/link-requests/create", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"pin":         "1234",
	})
	require.Equal(t, http.StatusCreated, code)
	reqID := int64(resp["data"].(map[string]interface{})["id"].(float64))

	// A pay-request reject cannot settle a link request
	code, resp = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/pay-requests/reject/%d", reqID), userToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "LNK_001", resp["error_code"])

	// The right endpoint settles it
	code, resp = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/link-requests/reject/%d", reqID), merchantToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "rejected", resp["data"].(map[string]interface{})["status"])
}

func TestIntegration_OTPRoundTrip(t *testing.T) {
	app := newTestApp(t)

	code, _ := app.do(t, http.MethodPost, "/api/v1/otp/send", "", map[string]string{
		"phone": "5550000006",
	})
	require.Equal(t, http.StatusOK, code)

	// Pull the stored code straight out of miniredis
	stored, err := app.redis.Get("otp:5550000006")
	require.NoError(t, err)
	require.Len(t, stored, 6)

	code, resp := app.do(t, http.MethodPost, "/api/v1/otp/verify", "", map[string]string{
		"phone": "5550000006",
		"code":  stored,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["data"].(map[string]interface{})["verified"])

	// Codes are single use
	code, resp = app.do(t, http.MethodPost, "/api/v1/otp/verify", "", map[string]string{
		"phone": "5550000006",
		"code":  stored,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "AUTH_005", resp["error_code"])
}

func TestIntegration_AccountDeletionRules(t *testing.T) {
	app := newTestApp(t)

	merchantID, merchantToken := app.registerMerchant(t, "5550000007")
	userID, userToken := app.registerUser(t, "Faru")

	code, _ := app.do(t, http.MethodPost, "/api/v1/link/create", merchantToken, map[string]interface{}{
		"user_id":         userID,
		"pin":             "1234",
		"initial_balance": 100,
	})
	require.Equal(t, http.StatusCreated, code)

	// Deletion refused while the link holds funds
	code, resp := app.do(t, http.MethodDelete, "/api/v1/users/account/"+userID, userToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "LNK_006", resp["error_code"])

	// Spend down to zero, then deletion goes through
	code, _ = app.do(t, http.MethodPost, "/api/v1/link/purchase", userToken, map[string]interface{}{
		"merchant_id": merchantID,
		"user_id":     userID,
		"amount":      100,
		"pin":         "1234",
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = app.do(t, http.MethodDelete, "/api/v1/users/account/"+userID, userToken, nil)
	require.Equal(t, http.StatusOK, code)

	// The login is gone
	code, _ = app.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"user_id":  userID,
		"password": "user-pass-123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Another user cannot delete someone else's account
	_, otherToken := app.registerUser(t, "Gita")
	code, _ = app.do(t, http.MethodDelete, "/api/v1/users/account/UR000000", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}
