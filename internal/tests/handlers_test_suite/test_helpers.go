package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	api "github.com/rogerio-castellano/ims-backend/internal/http"
	handler "github.com/rogerio-castellano/ims-backend/internal/http/handlers"
	rl "github.com/rogerio-castellano/ims-backend/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ims-backend/internal/models"
	"github.com/rogerio-castellano/ims-backend/internal/repo"
)

var (
	adminToken    string
	employeeToken string

	productRepo      *repo.InMemoryProductRepository
	movementRepo     *repo.InMemoryMovementRepository
	notificationRepo *repo.InMemoryNotificationRepository
	userRepo         *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	adminToken, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating admin token: %v", err))
	}
	employeeToken, err = generateToken(r, "employee", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating employee token: %v", err))
	}
	rl.CleanupAllVisitors()
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	movementRepo = repo.NewInMemoryMovementRepository(productRepo)
	handler.SetMovementRepo(movementRepo)

	notificationRepo = repo.NewInMemoryNotificationRepository()
	handler.SetNotificationRepo(notificationRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
	userRepo.CreateUser(models.User{
		Username:     "employee",
		PasswordHash: string(hash),
		Role:         "employee",
	})
}

func clearAll() {
	productRepo.Clear()
	movementRepo.Clear()
	notificationRepo.Clear()
	// Auth endpoints are rate limited per client IP; httptest requests all
	// share one, so reset between tests.
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func validProduct(name string) handler.ProductRequest {
	return handler.ProductRequest{
		Name:         name,
		Description:  "test product",
		Price:        99.99,
		InitialStock: 20,
		Stock:        20,
		MinimumStock: 5,
		Category:     "Electronics",
	}
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateProduct(r http.Handler, id string, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, "/products/"+id, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("expected 201 Created seeding product, got %d: %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding seeded product: %v", err))
	}
	return resp
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func pageAll() repo.Page {
	size := 100
	return repo.NewPage(nil, &size)
}

func lastMovement() (models.StockMovement, bool) {
	movements, _, err := movementRepo.List(repo.NewPage(nil, nil))
	if err != nil || len(movements) == 0 {
		return models.StockMovement{}, false
	}
	return movements[0], true
}
