package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvacscan/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "register.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProjectLifecycle(t *testing.T) {
	db := openTestDB(t)

	p, err := db.CreateProject("Acme Corp", "Bldg 2")
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	got, err := db.GetProject(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Corp", got.Customer)
	assert.Equal(t, "Bldg 2", got.Location)
	assert.False(t, got.CreatedAt.IsZero())

	missing, err := db.GetProject("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = db.MustProject("nope")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	projects, err := db.ListProjects()
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestAppendEquipmentKeepsOrder(t *testing.T) {
	db := openTestDB(t)
	p, err := db.CreateProject("Acme", "HQ")
	require.NoError(t, err)

	models := []string{"AHU-500", "RTU-150", "AHU-500"}
	for i, m := range models {
		entry, err := db.AppendEquipment(p.ID, internal.EquipmentRecord{
			Qty: 1, AssetType: "Air Handler", Manufacturer: "Carrier", Model: m,
			ManualLinks: []internal.ManualLink{{Title: "t", URL: "https://example.test"}},
		})
		require.NoError(t, err)
		assert.Equal(t, i, entry.Position)
	}

	register, err := db.Register(p.ID)
	require.NoError(t, err)
	require.Len(t, register, 3)
	for i, m := range models {
		assert.Equal(t, m, register[i].Model)
	}
	assert.Equal(t, "https://example.test", register[0].ManualLinks[0].URL)

	other, err := db.CreateProject("Other", "Site")
	require.NoError(t, err)
	entry, err := db.AppendEquipment(other.ID, internal.EquipmentRecord{Model: "X"})
	require.NoError(t, err)
	assert.Equal(t, 0, entry.Position)
}

func TestAppendEquipmentUnknownProject(t *testing.T) {
	db := openTestDB(t)
	_, err := db.AppendEquipment("missing", internal.EquipmentRecord{Model: "X"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestWithRegister(t *testing.T) {
	db := openTestDB(t)
	p, err := db.CreateProject("Acme", "HQ")
	require.NoError(t, err)
	_, err = db.AppendEquipment(p.ID, internal.EquipmentRecord{Model: "AHU-500"})
	require.NoError(t, err)

	err = db.WithRegister(p.ID, func(reg *RegisterTx) error {
		require.Len(t, reg.Records(), 1)
		entry, err := reg.Append(internal.EquipmentRecord{Model: "RTU-150"})
		require.NoError(t, err)
		assert.Equal(t, 1, entry.Position)
		entry, err = reg.Append(internal.EquipmentRecord{Model: "RTU-151"})
		require.NoError(t, err)
		assert.Equal(t, 2, entry.Position)
		assert.Len(t, reg.Records(), 3)
		return nil
	})
	require.NoError(t, err)

	failed := errors.New("boom")
	err = db.WithRegister(p.ID, func(reg *RegisterTx) error {
		_, err := reg.Append(internal.EquipmentRecord{Model: "rolled-back"})
		require.NoError(t, err)
		return failed
	})
	assert.ErrorIs(t, err, failed)

	register, err := db.Register(p.ID)
	require.NoError(t, err)
	require.Len(t, register, 3)
	assert.Equal(t, "RTU-151", register[2].Model)

	err = db.WithRegister("missing", func(*RegisterTx) error { return nil })
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRuns(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.InsertRun("trace", "p1", "export", map[string]float64{"totalMs": 3}, map[string]int{"rows": 2}))
	n, err := db.CountRuns("p1", "export")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
