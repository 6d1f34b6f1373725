package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authfeature "github.com/dalemusser/ridehub/internal/app/features/auth"
	userstore "github.com/dalemusser/ridehub/internal/app/store/users"
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/dalemusser/ridehub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*authfeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens := auth.NewTokenManager("test-secret", "ridehub", time.Hour)
	return authfeature.NewHandler(userstore.New(db), tokens, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestSignup(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]any{
		"name":     "Dana Driver",
		"email":    "dana@example.com",
		"password": "hunter2hunter2",
		"role":     "driver",
		"capacity": 6,
	})
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	body := testutil.DecodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success: got %v", body["success"])
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("expected a token")
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user missing: %v", body)
	}
	if user["email"] != "dana@example.com" {
		t.Errorf("email: got %v", user["email"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash leaked in response")
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]any{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "short",
		"role":     "rider",
	})
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures.CreateRider(ctx, "Riley", "riley@example.com")

	req := testutil.NewJSONRequest(t, "POST", "/signup", map[string]any{
		"name":     "Riley Again",
		"email":    "riley@example.com",
		"password": "hunter2hunter2",
		"role":     "rider",
	})
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want 409", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	created := fixtures.CreateRider(ctx, "Riley", "riley@example.com") // password "pw"

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]any{
		"email":    "Riley@Example.com",
		"password": "pw",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	body := testutil.DecodeBody(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token")
	}

	// The token round-trips through the verifier.
	u, err := h.Tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if u.ID != created.ID.Hex() || u.Role != "rider" {
		t.Errorf("token user: %+v", u)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures.CreateRider(ctx, "Riley", "riley@example.com")

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]any{
		"email":    "riley@example.com",
		"password": "nope",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]any{
		"email":    "ghost@example.com",
		"password": "pw",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	// Same status and message as a wrong password.
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
	body := testutil.DecodeBody(t, rec)
	if body["error"] != "invalid email or password" {
		t.Errorf("error: got %v", body["error"])
	}
}
