package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	id := NewID("p_")
	assert.True(t, strings.HasPrefix(id, "p_"))
	assert.NotEqual(t, id, NewID("p_"))
}

func TestPropertyStatusToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PropertyVacant, PropertyOccupied.Toggle())
	assert.Equal(t, PropertyOccupied, PropertyVacant.Toggle())
	// Unknown values normalize to occupied; toggling twice returns to vacant.
	assert.Equal(t, PropertyOccupied, PropertyStatus("").Toggle())
}

func TestNewProperty(t *testing.T) {
	t.Parallel()

	p, err := NewProperty("12 Oak St", 1200, "u_1")
	require.NoError(t, err)
	assert.Equal(t, PropertyVacant, p.Status)
	assert.True(t, strings.HasPrefix(p.ID, "p_"))

	_, err = NewProperty("", 1200, "u_1")
	assert.Error(t, err)
	_, err = NewProperty("12 Oak St", -1, "u_1")
	assert.Error(t, err)
	_, err = NewProperty("12 Oak St", 1200, "")
	assert.Error(t, err)
}

func TestNewTenant(t *testing.T) {
	t.Parallel()

	tn, err := NewTenant("John Doe", "  John@Example.COM ", "u_1", "shared")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", tn.Contact)
	assert.Equal(t, "shared", tn.SharedID)

	tn, err = NewTenant("John Doe", "", "u_1", "")
	require.NoError(t, err)
	assert.Empty(t, tn.Contact)

	_, err = NewTenant("", "john@example.com", "u_1", "")
	assert.Error(t, err)
	_, err = NewTenant("John Doe", "john@example.com", "", "")
	assert.Error(t, err)
}

func TestNewLease(t *testing.T) {
	t.Parallel()

	l, err := NewLease("p_1", "t_1", "2025-01-01", "2025-12-31", 1500)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(l.ID, "l_"))

	_, err = NewLease("", "t_1", "2025-01-01", "2025-12-31", 1500)
	assert.Error(t, err)
	_, err = NewLease("p_1", "t_1", "", "2025-12-31", 1500)
	assert.Error(t, err)
	_, err = NewLease("p_1", "t_1", "2025-01-01", "2025-12-31", -1)
	assert.Error(t, err)
}

func TestNewPayment(t *testing.T) {
	t.Parallel()

	p, err := NewPayment("l_1", "2025-07", 1500, true)
	require.NoError(t, err)
	assert.True(t, p.Paid)

	for _, month := range []string{"", "2025-7", "2025/07", "202507", "2025-07-01"} {
		_, err = NewPayment("l_1", month, 1500, false)
		assert.Error(t, err, "month %q", month)
	}

	_, err = NewPayment("", "2025-07", 1500, false)
	assert.Error(t, err)
	_, err = NewPayment("l_1", "2025-07", -1, false)
	assert.Error(t, err)
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	u, err := NewUser("  Olive@Example.COM ", "Olive", "hash", RoleOwner, "s_1")
	require.NoError(t, err)
	assert.Equal(t, "olive@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = NewUser("", "Olive", "hash", RoleOwner, "s_1")
	assert.Error(t, err)
	_, err = NewUser("olive@example.com", "Olive", "", RoleOwner, "s_1")
	assert.Error(t, err)
	_, err = NewUser("olive@example.com", "Olive", "hash", "admin", "s_1")
	assert.Error(t, err)
	_, err = NewUser("olive@example.com", "Olive", "hash", RoleOwner, "")
	assert.Error(t, err)
}

func TestNewAuditEntry(t *testing.T) {
	t.Parallel()

	e := NewAuditEntry("u_1", "olive@example.com", "create", "property", "p_1")
	assert.True(t, strings.HasPrefix(e.ID, "a_"))
	assert.Equal(t, "u_1", e.OwnerID)
	assert.Equal(t, "create", e.Action)
	assert.False(t, e.CreatedAt.IsZero())
}
