package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/core/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers"
	"github.com/10021987z/dzilo-sub003/modules/core/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/httpapi"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

func setupUserRoutes(t *testing.T) *httptest.Server {
	t.Helper()
	log := logging.ConsoleLogger(logrus.ErrorLevel)
	notifier := notify.New(log, notify.DefaultTTL)
	t.Cleanup(notifier.Dispose)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(log),
		Notifier: notifier,
		Logger:   log,
		Bundle:   intl.Bundle(),
	})
	app.RegisterServices(
		services.NewUserService(persistence.NewInmemUserRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(controllers.NewUserController(app))
	require.NoError(t, app.Initialize(context.Background()))

	srv := httptest.NewServer(app.Router())
	t.Cleanup(srv.Close)
	return srv
}

func createUserForm(email string) url.Values {
	return url.Values{
		"firstName":       {"Ada"},
		"lastName":        {"Lovelace"},
		"email":           {email},
		"password":        {"secret-password"},
		"confirmPassword": {"secret-password"},
		"language":        {"en"},
		"role":            {"admin"},
	}
}

func TestUserController_CreateListAndConflict(t *testing.T) {
	t.Parallel()
	srv := setupUserRoutes(t)
	client := srv.Client()

	resp, err := client.PostForm(srv.URL+"/users", createUserForm("ada@example.com"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created controllers.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Ada", created.FirstName)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.NotEmpty(t, created.ID)

	dup, err := client.PostForm(srv.URL+"/users", createUserForm("ADA@example.com"))
	require.NoError(t, err)
	defer dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode)

	list, err := client.Get(srv.URL + "/users?q=ada")
	require.NoError(t, err)
	defer list.Body.Close()
	require.Equal(t, http.StatusOK, list.StatusCode)

	var rows []controllers.UserResponse
	require.NoError(t, json.NewDecoder(list.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
}

func TestUserController_ValidationErrorsAreLocalized(t *testing.T) {
	t.Parallel()
	srv := setupUserRoutes(t)

	form := createUserForm("not-an-email")
	form.Set("confirmPassword", "something-else")

	req, err := http.NewRequest(
		http.MethodPost,
		srv.URL+"/users",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept-Language", "fr")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var envelope httpapi.ValidationEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Contains(t, envelope.Errors, "email")
	assert.Contains(t, envelope.Errors, "confirmPassword")
	assert.NotContains(t, envelope.Errors, "firstName")
}
