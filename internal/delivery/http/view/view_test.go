package view

import (
	"bytes"
	"testing"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPage struct {
	Title     string
	Active    string
	Bare      bool
	Identity  entity.Identity
	Flashes   []struct{ Level, Message string }
	CSRFField string
	CSRFToken string
	FormError string
	Data      any
}

func TestRenderer_ParsesEveryScreen(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"login", "error", "dashboard", "orders", "customer",
		"products", "product_form", "customers", "delivery", "settings",
	} {
		assert.Contains(t, r.pages, name)
	}
	assert.NotContains(t, r.pages, "layout")
}

func TestRenderer_UnknownView(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	err = r.Render(&bytes.Buffer{}, "missing", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestRenderer_BarePage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "login", testPage{
		Title:     "Sign in",
		Bare:      true,
		FormError: "Invalid email or password",
		Data:      struct{ Email string }{Email: "admin@example.com"},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `value="admin@example.com"`)
	assert.Contains(t, html, "Invalid email or password")
	assert.NotContains(t, html, "sidebar\">")
}

func TestRenderer_DashboardInShell(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "dashboard", testPage{
		Title:    "Dashboard",
		Active:   "dashboard",
		Identity: entity.Identity{Name: "Grace Hopper"},
		Flashes:  []struct{ Level, Message string }{{Level: "success", Message: "Welcome back"}},
		Data: &entity.DashboardSummary{
			TotalRevenue: 1250.5,
			RecentOrders: []entity.Order{{ID: 7, Status: entity.OrderCompleted, Total: 40, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}},
			TopProducts:  []entity.Product{{Name: "Lamp", Rating: 4.5, Stock: 3}},
		},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "$1250.50")
	assert.Contains(t, html, "ORD-7")
	assert.Contains(t, html, "May 1, 2024")
	assert.Contains(t, html, "badge-success")
	assert.Contains(t, html, "GH")
	assert.Contains(t, html, "Welcome back")
	assert.Contains(t, html, `class="low-stock"`)
}

func TestFuncs(t *testing.T) {
	funcs := Funcs()

	money := funcs["money"].(func(any) string)
	assert.Equal(t, "$9.50", money(entity.Amount(9.5)))
	assert.Equal(t, "$3.00", money(3.0))
	assert.Equal(t, "$0.00", money("nope"))

	date := funcs["date"].(func(time.Time) string)
	assert.Equal(t, "-", date(time.Time{}))

	title := funcs["title"].(func(any) string)
	assert.Equal(t, "In transit", title(entity.DeliveryInTransit))

	assert.Equal(t, "badge-danger", statusClass(entity.OrderCancelled))
	assert.Equal(t, "badge-warning", statusClass(entity.OrderPending))
}
