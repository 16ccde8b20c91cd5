package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	controllers_feed "github.com/CPU-commits/Intranet_BSubjects/feed/controllers"
	"github.com/CPU-commits/Intranet_BSubjects/models/memory"
	controllers_query "github.com/CPU-commits/Intranet_BSubjects/query/controllers"
	query "github.com/CPU-commits/Intranet_BSubjects/query/server"
	"github.com/CPU-commits/Intranet_BSubjects/res"
	"github.com/CPU-commits/Intranet_BSubjects/services"
	"github.com/CPU-commits/Intranet_BSubjects/smaps"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Body    T      `json:"body"`
}

type testRouters struct {
	feed  *gin.Engine
	query *gin.Engine
	store *memory.Store
}

func newTestRouters(t *testing.T) *testRouters {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	store := memory.New()
	subjectsService := services.NewSubjectsService(store, logger, services.SubjectsServiceOptions{})
	options := RouterOptions{ClientURL: "localhost:3000"}

	return &testRouters{
		feed: NewRouter(
			controllers_feed.NewSubjectsController(subjectsService, logger),
			logger,
			options,
		),
		query: query.NewRouter(
			controllers_query.NewSubjectsController(subjectsService, logger),
			logger,
			query.RouterOptions{ClientURL: "localhost:3000"},
		),
		store: store,
	}
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var response envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return response
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d: %s", w.Code, status, w.Body.String())
	}
}

func (r *testRouters) create(t *testing.T, body string) string {
	t.Helper()
	w := doRequest(t, r.feed, http.MethodPost, BASE_PATH, body)
	expectStatus(t, w, http.StatusCreated)
	return decode[smaps.SubjectMap](t, w).Body.Subject.ID.Hex()
}

func TestSubjectLifecycle(t *testing.T) {
	r := newTestRouters(t)
	student := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	// Create
	w := doRequest(t, r.feed, http.MethodPost, BASE_PATH, `{"name":"Calc","teacher":"Dr.X"}`)
	expectStatus(t, w, http.StatusCreated)
	created := decode[smaps.SubjectMap](t, w)
	if !created.Success || created.Body.Subject.Name != "Calc" {
		t.Fatalf("created = %+v", created)
	}
	if !strings.Contains(w.Body.String(), `"alumni":[]`) {
		t.Errorf("alumni must serialize as an empty array: %s", w.Body.String())
	}
	id := created.Body.Subject.ID.Hex()

	// Enroll twice
	for i := 0; i < 2; i++ {
		w = doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id+"/enroll", `{"studentId":"`+student+`"}`)
		expectStatus(t, w, http.StatusOK)
		alumni := decode[smaps.SubjectMap](t, w).Body.Subject.Alumni
		if len(alumni) != 1 || alumni[0].Hex() != student {
			t.Fatalf("enroll %d: alumni = %v", i+1, alumni)
		}
	}

	// Drop a student that is not enrolled
	w = doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id+"/drop", `{"studentId":"`+other+`"}`)
	expectStatus(t, w, http.StatusOK)
	if alumni := decode[smaps.SubjectMap](t, w).Body.Subject.Alumni; len(alumni) != 1 {
		t.Errorf("drop of absent student changed alumni: %v", alumni)
	}

	// Visible to the read side
	w = doRequest(t, r.query, http.MethodGet, BASE_PATH+"/student/"+student, "")
	expectStatus(t, w, http.StatusOK)
	if subjects := decode[smaps.SubjectsMap](t, w).Body.Subjects; len(subjects) != 1 {
		t.Errorf("student subjects = %v", subjects)
	}

	// Delete
	w = doRequest(t, r.feed, http.MethodDelete, BASE_PATH+"/"+id, "")
	expectStatus(t, w, http.StatusOK)
	if message := decode[map[string]interface{}](t, w).Message; message != "Subject deleted" {
		t.Errorf("message = %q", message)
	}

	// Gone
	w = doRequest(t, r.query, http.MethodGet, BASE_PATH+"/"+id, "")
	expectStatus(t, w, http.StatusNotFound)
	if message := decode[map[string]interface{}](t, w).Message; message != "Subject not found" {
		t.Errorf("message = %q", message)
	}
	w = doRequest(t, r.feed, http.MethodDelete, BASE_PATH+"/"+id, "")
	expectStatus(t, w, http.StatusNotFound)
}

func TestRenameSubject(t *testing.T) {
	r := newTestRouters(t)
	student := primitive.NewObjectID().Hex()
	id := r.create(t, `{"name":"Calc","teacher":"Dr.X","alumni":["`+student+`"]}`)

	w := doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id+"/rename", `{"newName":"Calculus I"}`)
	expectStatus(t, w, http.StatusOK)
	subject := decode[smaps.SubjectMap](t, w).Body.Subject
	if subject.Name != "Calculus I" || subject.Teacher != "Dr.X" || len(subject.Alumni) != 1 {
		t.Errorf("subject = %+v", subject)
	}

	w = doRequest(
		t,
		r.feed,
		http.MethodPut,
		BASE_PATH+"/"+primitive.NewObjectID().Hex()+"/rename",
		`{"newName":"X"}`,
	)
	expectStatus(t, w, http.StatusNotFound)
}

func TestRenameWithoutNewName(t *testing.T) {
	r := newTestRouters(t)
	id := r.create(t, `{"name":"Calc","teacher":"Dr.X"}`)
	writes := r.store.Writes()

	w := doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id+"/rename", `{}`)
	expectStatus(t, w, http.StatusBadRequest)
	if message := decode[map[string]interface{}](t, w).Message; message != "newName is a required field" {
		t.Errorf("message = %q", message)
	}
	if r.store.Writes() != writes {
		t.Error("store was written by an invalid request")
	}
}

func TestCreateValidation(t *testing.T) {
	r := newTestRouters(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing teacher", `{"name":"Calc"}`, "teacher is a required field"},
		{"missing name", `{"teacher":"Dr.X"}`, "name is a required field"},
		{"malformed alumni", `{"name":"Calc","teacher":"Dr.X","alumni":["S1"]}`, "must be a valid id"},
		{"malformed body", `{"name":`, "Invalid body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r.feed, http.MethodPost, BASE_PATH, tt.body)
			expectStatus(t, w, http.StatusBadRequest)
			if message := decode[map[string]interface{}](t, w).Message; !strings.Contains(message, tt.message) {
				t.Errorf("message = %q, want %q", message, tt.message)
			}
		})
	}
	if r.store.Writes() != 0 {
		t.Errorf("store writes = %d, want 0", r.store.Writes())
	}
}

func TestMalformedPathID(t *testing.T) {
	r := newTestRouters(t)

	w := doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/A1/enroll", `{"studentId":"`+primitive.NewObjectID().Hex()+`"}`)
	expectStatus(t, w, http.StatusBadRequest)
	if message := decode[map[string]interface{}](t, w).Message; message != "id must be a valid id" {
		t.Errorf("message = %q", message)
	}
	w = doRequest(t, r.feed, http.MethodDelete, BASE_PATH+"/A1", "")
	expectStatus(t, w, http.StatusBadRequest)
}

func TestUpdateSubject(t *testing.T) {
	r := newTestRouters(t)
	student := primitive.NewObjectID().Hex()
	id := r.create(t, `{"name":"Calc","teacher":"Dr.X"}`)

	w := doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id, `{"teacher":"Dr.Y","alumni":["`+student+`","`+student+`"]}`)
	expectStatus(t, w, http.StatusOK)
	subject := decode[smaps.SubjectMap](t, w).Body.Subject
	if subject.Name != "Calc" || subject.Teacher != "Dr.Y" || len(subject.Alumni) != 1 {
		t.Errorf("subject = %+v", subject)
	}

	// Nothing to change
	w = doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id, `{}`)
	expectStatus(t, w, http.StatusOK)
	if got := decode[smaps.SubjectMap](t, w).Body.Subject; got.Teacher != "Dr.Y" {
		t.Errorf("subject = %+v", got)
	}
}

func TestUpdateRejectsEmptyFields(t *testing.T) {
	r := newTestRouters(t)
	id := r.create(t, `{"name":"Calc","teacher":"Dr.X"}`)
	writes := r.store.Writes()

	for _, body := range []string{`{"name":"","teacher":""}`, `{"name":""}`, `{"teacher":""}`} {
		w := doRequest(t, r.feed, http.MethodPut, BASE_PATH+"/"+id, body)
		expectStatus(t, w, http.StatusBadRequest)
		if message := decode[map[string]interface{}](t, w).Message; !strings.Contains(message, "must be at least 1 character") {
			t.Errorf("%s: message = %q", body, message)
		}
	}
	if r.store.Writes() != writes {
		t.Error("store was written by an invalid update")
	}

	w := doRequest(t, r.query, http.MethodGet, BASE_PATH+"/"+id, "")
	expectStatus(t, w, http.StatusOK)
	subject := decode[smaps.SubjectWithStudentsMap](t, w).Body.Subject
	if subject.Name != "Calc" || subject.Teacher != "Dr.X" {
		t.Errorf("subject = %+v", subject)
	}
}

func TestSwaggerDocs(t *testing.T) {
	r := newTestRouters(t)

	tests := []struct {
		name   string
		router http.Handler
		title  string
	}{
		{"feed", r.feed, `"title": "Subjects Feed API"`},
		{"query", r.query, `"title": "Subjects API"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, tt.router, http.MethodGet, BASE_PATH+"/swagger/doc.json", "")
			expectStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), tt.title) {
				t.Errorf("doc.json without %s", tt.title)
			}
		})
	}
}

func TestStoreFailureHidesCause(t *testing.T) {
	r := newTestRouters(t)
	r.store.FailWith(errors.New("dial tcp 10.0.0.4:27017: connection refused"))

	w := doRequest(t, r.feed, http.MethodPost, BASE_PATH, `{"name":"Calc","teacher":"Dr.X"}`)
	expectStatus(t, w, http.StatusInternalServerError)
	if strings.Contains(w.Body.String(), "10.0.0.4") {
		t.Errorf("response leaks the cause: %s", w.Body.String())
	}
	if message := decode[map[string]interface{}](t, w).Message; message != res.INTERNAL_MESSAGE {
		t.Errorf("message = %q", message)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouters(t)

	w := doRequest(t, r.feed, http.MethodGet, BASE_PATH+"/healthz", "")
	expectStatus(t, w, http.StatusOK)
	w = doRequest(t, r.feed, http.MethodGet, "/api/unknown", "")
	expectStatus(t, w, http.StatusNotFound)
}
