package resumes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/bootstrap"
	sharedauth "jobtrack-backend/internal/shared/auth"
	"jobtrack-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:              "0",
		CORSAllowOrigin:   []string{"http://localhost:5173"},
		PublicBaseURL:     "http://localhost:8080",
		ObjectStoreType:   "local",
		LocalStoreDir:     t.TempDir(),
		FileSigningSecret: "test-secret",
		LLMProvider:       "pollinations",
		LLMBaseURL:        "http://unused.invalid",
		Env:               "dev",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func bearerToken(t *testing.T, sub string) string {
	t.Helper()
	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: sub})
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return "Bearer " + token
}

func multipartPDF(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func uploadResume(t *testing.T, router *gin.Engine, auth, fileName, content string) string {
	t.Helper()
	body, contentType := multipartPDF(t, "file", fileName, content)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", auth)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d: %s", resp.Code, resp.Body.String())
	}
	var uploaded struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if uploaded.URL == "" {
		t.Fatal("expected signed url")
	}
	return uploaded.URL
}

func TestResumeUploadListFetchDelete(t *testing.T) {
	router := newTestRouter(t)
	auth := bearerToken(t, "google:alice")

	signedURL := uploadResume(t, router, auth, "cv.pdf", "%PDF-1.4 alice resume")

	// The signed URL resolves through the public files route without auth.
	path := strings.TrimPrefix(signedURL, "http://localhost:8080")
	reqFile := httptest.NewRequest(http.MethodGet, path, nil)
	respFile := httptest.NewRecorder()
	router.ServeHTTP(respFile, reqFile)

	if respFile.Code != http.StatusOK {
		t.Fatalf("expected 200 for signed url, got %d: %s", respFile.Code, respFile.Body.String())
	}
	data, _ := io.ReadAll(respFile.Body)
	if string(data) != "%PDF-1.4 alice resume" {
		t.Fatalf("unexpected file content %q", data)
	}

	// Listing shows the uploaded resume.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqList.Header.Set("Authorization", auth)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", respList.Code)
	}
	var listed struct {
		Resumes []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Resumes) != 1 {
		t.Fatalf("expected 1 resume, got %d", len(listed.Resumes))
	}
	if listed.Resumes[0].Name != "cv.pdf" {
		t.Fatalf("expected name cv.pdf, got %q", listed.Resumes[0].Name)
	}

	// Delete and verify the listing empties out.
	deleteBody, _ := json.Marshal(map[string]string{"resumeId": listed.Resumes[0].ID})
	reqDelete := httptest.NewRequest(http.MethodPost, "/api/v1/resume/delete", bytes.NewReader(deleteBody))
	reqDelete.Header.Set("Content-Type", "application/json")
	reqDelete.Header.Set("Authorization", auth)
	respDelete := httptest.NewRecorder()
	router.ServeHTTP(respDelete, reqDelete)

	if respDelete.Code != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d: %s", respDelete.Code, respDelete.Body.String())
	}
	var deleted struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(respDelete.Body).Decode(&deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if !deleted.Success {
		t.Fatal("expected success true")
	}

	reqList2 := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqList2.Header.Set("Authorization", auth)
	respList2 := httptest.NewRecorder()
	router.ServeHTTP(respList2, reqList2)

	var listedAfter struct {
		Resumes []struct {
			ID string `json:"id"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(respList2.Body).Decode(&listedAfter); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listedAfter.Resumes) != 0 {
		t.Fatalf("expected empty listing after delete, got %d", len(listedAfter.Resumes))
	}
}

func TestResumeDeleteForeignResumeForbidden(t *testing.T) {
	router := newTestRouter(t)
	aliceAuth := bearerToken(t, "google:alice")
	bobAuth := bearerToken(t, "google:bob")

	uploadResume(t, router, aliceAuth, "cv.pdf", "%PDF-1.4 alice resume")

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqList.Header.Set("Authorization", aliceAuth)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)

	var listed struct {
		Resumes []struct {
			ID string `json:"id"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Resumes) != 1 {
		t.Fatalf("expected 1 resume, got %d", len(listed.Resumes))
	}

	deleteBody, _ := json.Marshal(map[string]string{"resumeId": listed.Resumes[0].ID})
	reqDelete := httptest.NewRequest(http.MethodPost, "/api/v1/resume/delete", bytes.NewReader(deleteBody))
	reqDelete.Header.Set("Content-Type", "application/json")
	reqDelete.Header.Set("Authorization", bobAuth)
	respDelete := httptest.NewRecorder()
	router.ServeHTTP(respDelete, reqDelete)

	if respDelete.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", respDelete.Code)
	}
}

func TestResumeUploadRejectsUnsupportedType(t *testing.T) {
	router := newTestRouter(t)
	auth := bearerToken(t, "google:alice")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("plain text")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", auth)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestResumeUpdateRename(t *testing.T) {
	router := newTestRouter(t)
	auth := bearerToken(t, "google:alice")

	uploadResume(t, router, auth, "cv.pdf", "%PDF-1.4 alice resume")

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqList.Header.Set("Authorization", auth)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)

	var listed struct {
		Resumes []struct {
			ID string `json:"id"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("resumeId", listed.Resumes[0].ID); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.WriteField("name", "cv-renamed.pdf"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/resume/update", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", auth)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Name != "cv-renamed.pdf" {
		t.Fatalf("expected renamed resume, got %q", updated.Name)
	}
}
