package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jymtan/contact-manager-be/internal/http/respond"
	"github.com/jymtan/contact-manager-be/internal/models"
	"github.com/jymtan/contact-manager-be/internal/models/dto"
)

func TestContactCRUD(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")

	id := api.createContact(user.Token, dto.ContactRequest{
		Name: "Alice", Email: "alice@example.com", Phone: "0123456789",
	})

	status, env := api.do(http.MethodGet, "/api/contacts", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var listed []models.Contact
	api.decodeData(env, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Alice", listed[0].Name)

	status, env = api.do(http.MethodPut, contactPath(id), user.Token, dto.ContactRequest{
		Name: "Alice Updated", Email: "alice@example.com", Phone: "0987654321",
	})
	require.Equal(t, http.StatusOK, status)
	var updated models.Contact
	api.decodeData(env, &updated)
	assert.Equal(t, "Alice Updated", updated.Name)
	assert.Equal(t, "0987654321", updated.Phone)

	status, _ = api.do(http.MethodDelete, contactPath(id), user.Token, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = api.do(http.MethodGet, "/api/contacts", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	listed = nil
	api.decodeData(env, &listed)
	assert.Empty(t, listed)
}

func TestContactValidation(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")

	status, env := api.do(http.MethodPost, "/api/contacts", user.Token, dto.ContactRequest{Name: ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, respond.CategoryValidation, env.Category)

	status, _ = api.do(http.MethodPut, "/api/contacts/abc", user.Token, dto.ContactRequest{Name: "Alice"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestContactOwnership(t *testing.T) {
	api := newTestAPI(t)
	owner := api.registerUser("Owner", "owner@example.com")
	intruder := api.registerUser("Intruder", "intruder@example.com")

	id := api.createContact(owner.Token, dto.ContactRequest{Name: "Private"})

	status, env := api.do(http.MethodPut, contactPath(id), intruder.Token, dto.ContactRequest{Name: "Hijacked"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, respond.CategoryForbidden, env.Category)

	status, _ = api.do(http.MethodDelete, contactPath(id), intruder.Token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// The intruder's own list never shows the other user's contact.
	status, env = api.do(http.MethodGet, "/api/contacts", intruder.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var listed []models.Contact
	api.decodeData(env, &listed)
	assert.Empty(t, listed)
}

func TestContactNotFound(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")

	status, env := api.do(http.MethodDelete, contactPath(9999), user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, respond.CategoryNotFound, env.Category)
}

func TestContactSearch(t *testing.T) {
	api := newTestAPI(t)
	user := api.registerUser("Sam Tan", "sam@example.com")
	other := api.registerUser("Other", "other@example.com")

	api.createContact(user.Token, dto.ContactRequest{Name: "Alice Wong", Email: "alice@example.com"})
	api.createContact(user.Token, dto.ContactRequest{Name: "Bob Lim", Phone: "0123456789"})
	api.createContact(other.Token, dto.ContactRequest{Name: "Alice Tan"})

	status, env := api.do(http.MethodGet, "/api/contacts/search?keyword=alice", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var found []models.Contact
	api.decodeData(env, &found)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Wong", found[0].Name)

	status, env = api.do(http.MethodGet, "/api/contacts/search?keyword=0123", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	found = nil
	api.decodeData(env, &found)
	require.Len(t, found, 1)
	assert.Equal(t, "Bob Lim", found[0].Name)

	status, env = api.do(http.MethodGet, "/api/contacts/search", user.Token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, respond.CategoryValidation, env.Category)
}
