package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jymtan/contact-manager-be/internal/http/respond"
	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Plain User", "user@example.com")

	status, env := api.do(http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, respond.CategoryUnauthenticated, env.Category)

	status, env = api.do(http.MethodGet, "/api/admin/users", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, respond.CategoryForbidden, env.Category)
}

func TestAdminListUsersWithContacts(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")
	admin := api.registerAdmin("Boss", "boss@example.com")
	api.createContact(user.Token, dto.ContactRequest{Name: "Alice"})

	status, env := api.do(http.MethodGet, "/api/admin/users", admin.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var users []dto.UserWithContacts
	api.decodeData(env, &users)
	require.Len(t, users, 2)

	byEmail := make(map[string]dto.UserWithContacts, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	require.Contains(t, byEmail, "sam@example.com")
	require.Len(t, byEmail["sam@example.com"].Contacts, 1)
	assert.Equal(t, "Alice", byEmail["sam@example.com"].Contacts[0].Name)
	assert.Empty(t, byEmail["boss@example.com"].Contacts)
}

func TestAdminUserContacts(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")
	admin := api.registerAdmin("Boss", "boss@example.com")
	api.createContact(user.Token, dto.ContactRequest{Name: "Alice"})

	status, env := api.do(http.MethodGet, fmt.Sprintf("/api/admin/users/%d/contacts", user.UserID), admin.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var contacts []models.Contact
	api.decodeData(env, &contacts)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Alice", contacts[0].Name)
}

func TestAdminDeleteUser(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")
	admin := api.registerAdmin("Boss", "boss@example.com")

	status, _ := api.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", user.UserID), admin.Token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env := api.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "sam@example.com", Password: "pw123456",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, respond.CategoryUnauthenticated, env.Category)

	status, env = api.do(http.MethodDelete, "/api/admin/users/9999", admin.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, respond.CategoryNotFound, env.Category)
}
