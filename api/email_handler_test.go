package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vedanta-tech/team-site-backend/errs"
	"github.com/vedanta-tech/team-site-backend/services"
)

type fakeMailer struct {
	contacts     []services.ContactPayload
	applications []services.ApplicationPayload
	err          error
}

func (f *fakeMailer) SendContact(p services.ContactPayload) error {
	if f.err != nil {
		return f.err
	}
	f.contacts = append(f.contacts, p)
	return nil
}

func (f *fakeMailer) SendApplication(p services.ApplicationPayload) error {
	if f.err != nil {
		return f.err
	}
	f.applications = append(f.applications, p)
	return nil
}

func sendEmailRequestHelper(t *testing.T, mailer *fakeMailer, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := newEmailHandler(mailer)
	req := httptest.NewRequest(method, "/api/send-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.sendEmail()(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("malformed response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestSendEmailContactSuccess(t *testing.T) {
	mailer := &fakeMailer{}
	rec := sendEmailRequestHelper(t, mailer, http.MethodPost,
		`{"type":"contact","data":{"name":"Asha","email":"asha@example.com","subject":"Hi","message":"Hello"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}
	if body["message"] != "Emails sent successfully" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if len(mailer.contacts) != 1 || mailer.contacts[0].Name != "Asha" {
		t.Errorf("expected one contact payload relayed, got %+v", mailer.contacts)
	}
}

func TestSendEmailApplicationSuccess(t *testing.T) {
	mailer := &fakeMailer{}
	rec := sendEmailRequestHelper(t, mailer, http.MethodPost,
		`{"type":"application","data":{"fullName":"Ravi","email":"ravi@example.com"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(mailer.applications) != 1 {
		t.Errorf("expected one application payload relayed, got %+v", mailer.applications)
	}
}

func TestSendEmailOptionsAllowed(t *testing.T) {
	rec := sendEmailRequestHelper(t, &fakeMailer{}, http.MethodOptions, "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
}

func TestSendEmailMethodNotAllowed(t *testing.T) {
	rec := sendEmailRequestHelper(t, &fakeMailer{}, http.MethodGet, "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "Method not allowed" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestSendEmailMissingFields(t *testing.T) {
	for _, body := range []string{``, `{}`, `{"type":"contact"}`, `{"data":{"name":"x"}}`} {
		rec := sendEmailRequestHelper(t, &fakeMailer{}, http.MethodPost, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
			continue
		}
		if decodeBody(t, rec)["message"] != "Missing required fields" {
			t.Errorf("body %q: unexpected response %s", body, rec.Body.String())
		}
	}
}

func TestSendEmailInvalidType(t *testing.T) {
	rec := sendEmailRequestHelper(t, &fakeMailer{}, http.MethodPost, `{"type":"fax","data":{"a":1}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "Invalid email type" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestSendEmailValidationErrorIs400(t *testing.T) {
	mailer := &fakeMailer{err: errs.NewMissingFieldError("subject")}
	rec := sendEmailRequestHelper(t, mailer, http.MethodPost,
		`{"type":"contact","data":{"name":"Asha","email":"asha@example.com"}}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a kind-specific missing field, got %d", rec.Code)
	}
}

func TestSendEmailTransportErrorIs5xx(t *testing.T) {
	mailer := &fakeMailer{err: errs.NewEmailError("dispatch", http.ErrServerClosed)}
	rec := sendEmailRequestHelper(t, mailer, http.MethodPost,
		`{"type":"contact","data":{"name":"Asha","email":"asha@example.com","subject":"Hi","message":"Hello"}}`)

	if rec.Code < 500 {
		t.Errorf("expected 5xx for a transport failure, got %d", rec.Code)
	}
}
