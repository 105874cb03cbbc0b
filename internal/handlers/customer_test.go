package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/models"

	"github.com/google/uuid"
)

func TestCreateCustomer_SequentialCodes(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	var first models.Customer
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/customers", adminToken, map[string]any{
		"name": "Acme",
	})
	wantStatus(t, resp, http.StatusCreated)
	decodeBody(t, resp, &first)
	if first.Code != "0001" {
		t.Errorf("expected code '0001', got '%s'", first.Code)
	}

	var second models.Customer
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/customers", adminToken, map[string]any{
		"name": "Globex",
	})
	wantStatus(t, resp, http.StatusCreated)
	decodeBody(t, resp, &second)
	if second.Code != "0002" {
		t.Errorf("expected code '0002', got '%s'", second.Code)
	}
}

func TestCreateCustomer_RequiresName(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/customers", adminToken, map[string]any{
		"address": "street 1",
	})
	defer resp.Body.Close()
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestUpdateCustomer_CodeImmutable(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	var created models.Customer
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/customers", adminToken, map[string]any{
		"name": "Acme",
	})
	wantStatus(t, resp, http.StatusCreated)
	decodeBody(t, resp, &created)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/customers/"+created.CustomerID, adminToken, map[string]any{
		"name":    "Acme Renamed",
		"address": "new street",
	})
	wantStatus(t, resp, http.StatusOK)

	var updated models.Customer
	decodeBody(t, resp, &updated)
	if updated.Code != created.Code {
		t.Errorf("customer code must be immutable: %s -> %s", created.Code, updated.Code)
	}
	if updated.Name != "Acme Renamed" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
}

func TestDeleteCustomer_BlockedByLinkedProjects(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	var customer models.Customer
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/customers", adminToken, map[string]any{
		"name": "Acme",
	})
	wantStatus(t, resp, http.StatusCreated)
	decodeBody(t, resp, &customer)

	project := models.Project{
		ProjectID: uuid.NewString(),
		JobName:   "Site",
		Status:    models.ProjectOpen,
		Code:      models.ProjectCode{CustomerCode: customer.Code, Serial: 1, Suffix: "A"},
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/customers/"+customer.CustomerID, adminToken, nil)
	wantStatus(t, resp, http.StatusConflict)

	var result struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &result)
	if !strings.Contains(result.Message, "1 project(s)") {
		t.Errorf("conflict message must name the linked project count: %q", result.Message)
	}
}

func TestDeleteCustomer_ByCode(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	var customer models.Customer
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/customers", adminToken, map[string]any{
		"name": "Acme",
	})
	wantStatus(t, resp, http.StatusCreated)
	decodeBody(t, resp, &customer)

	// удаление по коду вместо идентификатора
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/customers/"+customer.Code, adminToken, nil)
	defer resp.Body.Close()
	wantStatus(t, resp, http.StatusOK)

	var count int64
	database.DB.Model(&models.Customer{}).Count(&count)
	if count != 0 {
		t.Errorf("expected customer deleted, %d left", count)
	}
}

func TestListCustomers_RoleGate(t *testing.T) {
	srv := setupServer(t)
	_, employeeToken := seedUser(t, "worker", models.RoleEmployee)
	_, principalToken := seedUser(t, "lead", models.RolePrincipal)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/customers", employeeToken, nil)
	wantStatus(t, resp, http.StatusForbidden)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/customers", principalToken, nil)
	defer resp.Body.Close()
	wantStatus(t, resp, http.StatusOK)
}
