package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-engine/internal/autobid"
	"auction-engine/internal/engine"
	"auction-engine/internal/events"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/internal/settlement"
	"auction-engine/internal/wallet"
)

// TestEnv holds the fully wired application with in-memory collaborators.
type TestEnv struct {
	Router    *gin.Engine
	Repo      *repository.MemoryRepo
	Wallet    *wallet.MemoryWallet
	Bus       *events.InProcBus
	Engine    *engine.Engine
	Scheduler *scheduler.Scheduler
}

// SetupTestEnv wires the engine, auto-bid agent and settlement notifier the
// same way main does, on in-memory storage and wallet.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	walletSvc := wallet.NewMemoryWallet()
	bus := events.NewInProcBus()
	eng := engine.NewEngine(repo, walletSvc, bus)

	agent := autobid.NewAgent(repo, eng, bus)
	bus.Subscribe(agent.Handle)

	notifier := settlement.NewNotifier(repo, walletSvc, bus, settlement.DefaultBackoff)
	bus.Subscribe(notifier.Handle)

	return &TestEnv{
		Router:    server.SetupRouter(eng),
		Repo:      repo,
		Wallet:    walletSvc,
		Bus:       bus,
		Engine:    eng,
		Scheduler: scheduler.NewScheduler(repo, bus, scheduler.DefaultInterval),
	}
}

// SetBalance seeds a bidder's wallet.
func (env *TestEnv) SetBalance(userID string, amount int64) {
	env.Wallet.SetBalance(userID, decimal.NewFromInt(amount))
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses
// the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DataObject extracts the data field as an object, failing if it is absent.
func DataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// DataList extracts the data field as a list.
func DataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no data list: %v", resp)
	}
	return data
}
