package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-usergroup/config"
	"github.com/oksasatya/go-ddd-usergroup/internal/container"
	"github.com/oksasatya/go-ddd-usergroup/internal/domain/entity"
	handlers "github.com/oksasatya/go-ddd-usergroup/internal/interface/http"
	"github.com/oksasatya/go-ddd-usergroup/pkg/helpers"
	"github.com/oksasatya/go-ddd-usergroup/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type envelope[T any] struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    T               `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type api struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	c := container.New(config.Load(), helpers.NewDiscardLogger(), nil)
	return &api{t: t, engine: New(c)}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func (a *api) createUser(name, email string) handlers.UserResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/users", map[string]string{"name": name, "email": email})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[handlers.UserResponse](a.t, w).Data
}

func (a *api) createGroup(name, description string) handlers.GroupResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/groups", map[string]string{"name": name, "description": description})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[handlers.GroupResponse](a.t, w).Data
}

func TestUsersAPI(t *testing.T) {
	a := newAPI(t)

	alice := a.createUser("Alice", "alice@example.com")
	assert.Equal(t, "Alice", alice.Name)
	_, err := entity.ParseID(alice.ID)
	require.NoError(t, err)

	w := a.do(http.MethodGet, "/api/users/"+alice.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alice, decode[handlers.UserResponse](t, w).Data)

	w = a.do(http.MethodGet, "/api/users/lookup?email=alice@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alice.ID, decode[handlers.UserResponse](t, w).Data.ID)

	w = a.do(http.MethodGet, "/api/users/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPut, "/api/users/"+alice.ID, map[string]string{"name": "Alicia", "email": "alicia@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alicia", decode[handlers.UserResponse](t, w).Data.Name)

	a.createUser("Bob", "bob@example.com")
	w = a.do(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]handlers.UserResponse](t, w).Data, 2)

	w = a.do(http.MethodDelete, "/api/users/"+alice.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodGet, "/api/users/"+alice.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode[any](t, w).Success)
}

func TestUsersAPI_Errors(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/users", map[string]string{"name": "Alice", "email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"email":"must contain @"}`, string(decode[any](t, w).Error))

	w = a.do(http.MethodPost, "/api/users", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"name":"is required"}`, string(decode[any](t, w).Error))

	w = a.do(http.MethodPost, "/api/users", map[string]string{"name": "   ", "email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missing := entity.NewID().String()
	w = a.do(http.MethodPut, "/api/users/"+missing, map[string]string{"name": "Ghost", "email": "g@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodPut, "/api/users/not-a-uuid", map[string]string{"name": "Ghost", "email": "g@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodDelete, "/api/users/"+missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroupsAPI(t *testing.T) {
	a := newAPI(t)
	admins := a.createGroup("admins", "keys to everything")

	w := a.do(http.MethodGet, "/api/groups/lookup?name=admins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, admins, decode[handlers.GroupResponse](t, w).Data)

	w = a.do(http.MethodGet, "/api/groups/lookup?description=keys%20to%20everything", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, admins.ID, decode[handlers.GroupResponse](t, w).Data.ID)

	w = a.do(http.MethodGet, "/api/groups/lookup?name=ops", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodPost, "/api/groups", map[string]string{"name": "ops", "description": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPut, "/api/groups/"+admins.ID, map[string]string{"name": "root", "description": "fewer keys"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", decode[handlers.GroupResponse](t, w).Data.Name)

	w = a.do(http.MethodGet, "/api/groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]handlers.GroupResponse](t, w).Data, 1)

	w = a.do(http.MethodDelete, "/api/groups/"+admins.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUserGroupsAPI(t *testing.T) {
	a := newAPI(t)
	alice := a.createUser("Alice", "alice@example.com")
	admins := a.createGroup("admins", "keys")

	w := a.do(http.MethodPost, "/api/user-groups", map[string]string{"user_id": alice.ID, "group_id": admins.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ug := decode[handlers.UserGroupResponse](t, w).Data
	assert.Equal(t, alice.ID, ug.UserID)
	assert.Equal(t, admins.ID, ug.GroupID)

	w = a.do(http.MethodGet, "/api/user-groups/"+ug.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ug, decode[handlers.UserGroupResponse](t, w).Data)

	w = a.do(http.MethodGet, "/api/users/"+alice.ID+"/groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []handlers.UserGroupResponse{ug}, decode[[]handlers.UserGroupResponse](t, w).Data)

	w = a.do(http.MethodGet, "/api/groups/"+admins.ID+"/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]handlers.UserGroupResponse](t, w).Data, 1)

	w = a.do(http.MethodGet, "/api/user-groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]handlers.UserGroupResponse](t, w).Data, 1)

	other := entity.NewID().String()
	w = a.do(http.MethodPut, "/api/user-groups/"+ug.ID, map[string]string{"user_id": alice.ID, "group_id": other})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, other, decode[handlers.UserGroupResponse](t, w).Data.GroupID)

	w = a.do(http.MethodDelete, "/api/user-groups/"+ug.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodGet, "/api/users/"+alice.ID+"/groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]handlers.UserGroupResponse](t, w).Data)
}

func TestUserGroupsAPI_RejectsUnknownReferences(t *testing.T) {
	a := newAPI(t)
	alice := a.createUser("Alice", "alice@example.com")
	missing := entity.NewID().String()

	w := a.do(http.MethodPost, "/api/user-groups", map[string]string{"user_id": alice.ID, "group_id": missing})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(http.MethodPost, "/api/user-groups", map[string]string{"user_id": "bad", "group_id": missing})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"user_id":"must be a valid UUID"}`, string(decode[any](t, w).Error))

	w = a.do(http.MethodGet, "/api/user-groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]handlers.UserGroupResponse](t, w).Data)
}

func TestSystemRoutes(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodGet, "/api/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	a.createUser("Alice", "alice@example.com")
	w = a.do(http.MethodGet, "/api/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `usergroup_store_entries{store="user"} 1`)
	assert.Contains(t, w.Body.String(), `usergroup_http_requests_total{method="POST",route="/api/users",status="201"} 1`)

	w = a.do(http.MethodGet, "/api/debug/vars", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "memstats")
}

func TestSystemRoutes_MetricsDisabled(t *testing.T) {
	cfg := config.Load()
	cfg.DebugMetricsEnabled = false
	engine := New(container.New(cfg, helpers.NewDiscardLogger(), nil))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimitedAPI(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.Load()
	cfg.RateLimitMax = 2
	a := &api{t: t, engine: New(container.New(cfg, helpers.NewDiscardLogger(), rdb))}

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/users", nil).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, a.do(http.MethodGet, "/api/users", nil).Code)
	// health checks are never limited
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/healthz", nil).Code)
}

func TestCORS(t *testing.T) {
	cfg := config.Load()
	cfg.CORSAllowedOrigins = "https://app.example.com"
	engine := New(container.New(cfg, helpers.NewDiscardLogger(), nil))

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPI_MalformedPathIDs(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		method string
		path   string
		field  string
	}{
		{http.MethodGet, "/api/users/not-a-uuid", "id"},
		{http.MethodDelete, "/api/users/not-a-uuid", "id"},
		{http.MethodGet, "/api/users/not-a-uuid/groups", "user_id"},
		{http.MethodGet, "/api/groups/not-a-uuid", "id"},
		{http.MethodDelete, "/api/groups/not-a-uuid", "id"},
		{http.MethodGet, "/api/groups/not-a-uuid/users", "group_id"},
		{http.MethodGet, "/api/user-groups/not-a-uuid", "id"},
		{http.MethodDelete, "/api/user-groups/not-a-uuid", "id"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := a.do(tt.method, tt.path, nil)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.JSONEq(t, `{"`+tt.field+`":"must be a valid UUID"}`, string(decode[any](t, w).Error))
		})
	}
}

func TestAPI_UppercaseIDsMatchStoredIDs(t *testing.T) {
	a := newAPI(t)
	alice := a.createUser("Alice", "alice@example.com")
	admins := a.createGroup("admins", "keys")
	userID, groupID := strings.ToUpper(alice.ID), strings.ToUpper(admins.ID)

	w := a.do(http.MethodPost, "/api/user-groups", map[string]string{"user_id": userID, "group_id": groupID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ug := decode[handlers.UserGroupResponse](t, w).Data
	ugID := strings.ToUpper(ug.ID)

	w = a.do(http.MethodGet, "/api/users/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alice.ID, decode[handlers.UserResponse](t, w).Data.ID)

	w = a.do(http.MethodGet, "/api/groups/"+groupID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, admins.ID, decode[handlers.GroupResponse](t, w).Data.ID)

	w = a.do(http.MethodGet, "/api/user-groups/"+ugID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ug, decode[handlers.UserGroupResponse](t, w).Data)

	w = a.do(http.MethodGet, "/api/users/"+userID+"/groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []handlers.UserGroupResponse{ug}, decode[[]handlers.UserGroupResponse](t, w).Data)

	w = a.do(http.MethodGet, "/api/groups/"+groupID+"/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []handlers.UserGroupResponse{ug}, decode[[]handlers.UserGroupResponse](t, w).Data)

	w = a.do(http.MethodPut, "/api/users/"+userID, map[string]string{"name": "Alicia", "email": "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, alice.ID, decode[handlers.UserResponse](t, w).Data.ID)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/user-groups/"+ugID, nil).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/groups/"+groupID, nil).Code)
	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/users/"+userID, nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/api/users/"+alice.ID, nil).Code)
}

func TestAPI_EmptyListsCarryData(t *testing.T) {
	a := newAPI(t)
	alice := a.createUser("Alice", "alice@example.com")

	for _, path := range []string{"/api/users/" + alice.ID + "/groups", "/api/user-groups", "/api/groups"} {
		w := a.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "[]", string(body["data"]), path)
	}
}
