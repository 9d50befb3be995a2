package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecotrack-be/controllers"
	"ecotrack-be/models"
	"ecotrack-be/storage"
	"ecotrack-be/store"
	authUtils "ecotrack-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	backend := storage.NewMemory()
	schedules := store.NewScheduleStore(backend)
	issues := store.NewIssueStore(backend)

	r := gin.New()
	AuthRoutes(r, controllers.NewAuthController())
	ScheduleRoutes(r, controllers.NewScheduleController(schedules), controllers.NewAnalyticsController(schedules, issues))
	IssueRoutes(r, controllers.NewIssueController(issues), 100)
	GuideRoutes(r, controllers.NewGuideController())
	return r
}

func testUser(role models.UserRole) models.User {
	return models.User{ID: uuid.NewString(), Name: "Test " + string(role), Role: role}
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := authUtils.GenerateAndSetToken(*user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestRegisterIssuesSessionCookie(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", `{"name":"Ada","role":"resident"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var body struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}
	decodeBody(t, w, &body)
	if body.ID == "" || body.Name != "Ada" || body.Role != "resident" {
		t.Errorf("unexpected register response: %+v", body)
	}

	if !strings.Contains(w.Header().Get("Set-Cookie"), "auth_token=") {
		t.Error("register did not set the auth_token cookie")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", `{"name":"Mallory","role":"superuser"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMeReturnsTokenIdentity(t *testing.T) {
	r := setupRouter(t)
	user := testUser(models.Collector)

	w := doRequest(t, r, http.MethodGet, "/api/auth/me", "", &user)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	decodeBody(t, w, &body)
	if body.ID != user.ID || body.Role != "collector" {
		t.Errorf("me returned %+v, want id %s role collector", body, user.ID)
	}
}

func TestSchedulesRequireAuth(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/schedules", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAnyRoleListsSchedules(t *testing.T) {
	r := setupRouter(t)

	for _, role := range []models.UserRole{models.Resident, models.Collector, models.Admin} {
		user := testUser(role)
		w := doRequest(t, r, http.MethodGet, "/api/schedules", "", &user)
		if w.Code != http.StatusOK {
			t.Errorf("list as %s: status = %d, want 200", role, w.Code)
		}
	}
}

func TestOnlyAdminCreatesSchedule(t *testing.T) {
	r := setupRouter(t)
	body := `{"area":"Downtown","address":"7 Pine St","date":"2025-07-10","time":"08:30","wasteType":"recycling"}`

	resident := testUser(models.Resident)
	if w := doRequest(t, r, http.MethodPost, "/api/schedules", body, &resident); w.Code != http.StatusForbidden {
		t.Errorf("create as resident: status = %d, want 403", w.Code)
	}
	collector := testUser(models.Collector)
	if w := doRequest(t, r, http.MethodPost, "/api/schedules", body, &collector); w.Code != http.StatusForbidden {
		t.Errorf("create as collector: status = %d, want 403", w.Code)
	}

	admin := testUser(models.Admin)
	w := doRequest(t, r, http.MethodPost, "/api/schedules", body, &admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create as admin: status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var created models.PickupSchedule
	decodeBody(t, w, &created)
	if created.Status != models.Scheduled || created.ID == "" {
		t.Errorf("unexpected created schedule: %+v", created)
	}
}

func TestCreateScheduleRejectsUnknownWasteType(t *testing.T) {
	r := setupRouter(t)
	admin := testUser(models.Admin)

	body := `{"area":"Downtown","address":"7 Pine St","date":"2025-07-10","time":"08:30","wasteType":"nuclear"}`
	if w := doRequest(t, r, http.MethodPost, "/api/schedules", body, &admin); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCollectorTransitionsScheduleAndStatsFollow(t *testing.T) {
	r := setupRouter(t)
	collector := testUser(models.Collector)
	admin := testUser(models.Admin)

	var listed struct {
		Schedules []models.PickupSchedule `json:"schedules"`
	}
	w := doRequest(t, r, http.MethodGet, "/api/schedules", "", &collector)
	decodeBody(t, w, &listed)
	if len(listed.Schedules) == 0 {
		t.Fatal("expected seeded schedules")
	}
	target := listed.Schedules[0]

	w = doRequest(t, r, http.MethodPatch, "/api/schedules/"+target.ID+"/status", `{"status":"missed"}`, &collector)
	if w.Code != http.StatusOK {
		t.Fatalf("transition: status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var updated models.PickupSchedule
	decodeBody(t, w, &updated)
	if updated.Status != models.Missed || updated.CollectedBy != collector.ID || updated.CollectedAt == nil {
		t.Errorf("unexpected transition result: %+v", updated)
	}

	var stats struct {
		Collections models.StatusTotals `json:"collections"`
	}
	w = doRequest(t, r, http.MethodGet, "/api/schedules/stats", "", &admin)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status = %d, want 200: %s", w.Code, w.Body.String())
	}
	decodeBody(t, w, &stats)
	if stats.Collections.Missed != 1 {
		t.Errorf("missed count = %d, want 1", stats.Collections.Missed)
	}
	if stats.Collections.Scheduled != len(listed.Schedules)-1 {
		t.Errorf("scheduled count = %d, want %d", stats.Collections.Scheduled, len(listed.Schedules)-1)
	}
}

func TestTransitionRejectsNonTerminalStatus(t *testing.T) {
	r := setupRouter(t)
	collector := testUser(models.Collector)

	var listed struct {
		Schedules []models.PickupSchedule `json:"schedules"`
	}
	w := doRequest(t, r, http.MethodGet, "/api/schedules", "", &collector)
	decodeBody(t, w, &listed)

	w = doRequest(t, r, http.MethodPatch, "/api/schedules/"+listed.Schedules[0].ID+"/status", `{"status":"scheduled"}`, &collector)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestTransitionUnknownScheduleReturns404(t *testing.T) {
	r := setupRouter(t)
	collector := testUser(models.Collector)

	w := doRequest(t, r, http.MethodPatch, "/api/schedules/no-such-id/status", `{"status":"collected"}`, &collector)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestResidentTransitionDenied(t *testing.T) {
	r := setupRouter(t)
	resident := testUser(models.Resident)

	w := doRequest(t, r, http.MethodPatch, "/api/schedules/anything/status", `{"status":"collected"}`, &resident)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestIssueLifecycleAcrossRoles(t *testing.T) {
	r := setupRouter(t)
	resident := testUser(models.Resident)
	otherResident := testUser(models.Resident)
	collector := testUser(models.Collector)
	admin := testUser(models.Admin)

	body := `{"title":"Missed pickup","description":"Bin not emptied","area":"Downtown","address":"120 Main Street"}`
	w := doRequest(t, r, http.MethodPost, "/api/issues", body, &resident)
	if w.Code != http.StatusCreated {
		t.Fatalf("report: status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var reported models.Issue
	decodeBody(t, w, &reported)
	if reported.Status != models.Reported || reported.ReportedBy != resident.ID {
		t.Errorf("unexpected reported issue: %+v", reported)
	}
	if reported.ResolvedBy != "" || reported.ResolvedAt != nil {
		t.Errorf("new issue carries resolver fields: %+v", reported)
	}

	// Collectors may not report or view issues.
	if w := doRequest(t, r, http.MethodPost, "/api/issues", body, &collector); w.Code != http.StatusForbidden {
		t.Errorf("report as collector: status = %d, want 403", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, "/api/issues", "", &collector); w.Code != http.StatusForbidden {
		t.Errorf("list as collector: status = %d, want 403", w.Code)
	}

	// Residents see only their own reports.
	var listed struct {
		Issues []models.Issue `json:"issues"`
	}
	w = doRequest(t, r, http.MethodGet, "/api/issues", "", &otherResident)
	decodeBody(t, w, &listed)
	if len(listed.Issues) != 0 {
		t.Errorf("other resident sees %d issues, want 0", len(listed.Issues))
	}
	w = doRequest(t, r, http.MethodGet, "/api/issues", "", &resident)
	decodeBody(t, w, &listed)
	if len(listed.Issues) != 1 {
		t.Errorf("reporter sees %d issues, want 1", len(listed.Issues))
	}

	// Only admins resolve.
	if w := doRequest(t, r, http.MethodPatch, "/api/issues/"+reported.ID+"/status", `{"status":"resolved"}`, &resident); w.Code != http.StatusForbidden {
		t.Errorf("resolve as resident: status = %d, want 403", w.Code)
	}
	w = doRequest(t, r, http.MethodPatch, "/api/issues/"+reported.ID+"/status", `{"status":"resolved"}`, &admin)
	if w.Code != http.StatusOK {
		t.Fatalf("resolve: status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resolved models.Issue
	decodeBody(t, w, &resolved)
	if resolved.Status != models.Resolved || resolved.ResolvedBy != admin.ID || resolved.ResolvedAt == nil {
		t.Errorf("unexpected resolved issue: %+v", resolved)
	}
}

func TestResolveUnknownIssueReturns404(t *testing.T) {
	r := setupRouter(t)
	admin := testUser(models.Admin)

	w := doRequest(t, r, http.MethodPatch, "/api/issues/no-such-id/status", `{"status":"resolved"}`, &admin)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestStatsDeniedBelowAdmin(t *testing.T) {
	r := setupRouter(t)

	for _, role := range []models.UserRole{models.Resident, models.Collector} {
		user := testUser(role)
		if w := doRequest(t, r, http.MethodGet, "/api/schedules/stats", "", &user); w.Code != http.StatusForbidden {
			t.Errorf("stats as %s: status = %d, want 403", role, w.Code)
		}
	}
}

func TestGuideIsPublic(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/guide", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Guide []models.WasteGuideItem `json:"guide"`
	}
	decodeBody(t, w, &body)
	if len(body.Guide) != 4 {
		t.Errorf("guide has %d categories, want 4", len(body.Guide))
	}
}
