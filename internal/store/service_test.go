package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(filepath.Join(t.TempDir(), "portfolio.json"))
	require.NoError(t, svc.Init())
	return svc
}

func depositTx(id string, amount string) model.Transaction {
	return model.Transaction{
		ID: id, Date: model.NewDate(2024, time.January, 1),
		Type: model.TypeDeposit, Price: dec(amount),
	}
}

func TestInit(t *testing.T) {
	svc := newTestService(t)

	snap, err := svc.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)

	assert.Error(t, svc.Init(), "refuses to clobber an existing snapshot")
}

func TestAppend(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))

	snap, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.True(t, snap.Cash.Equal(dec("1000")), "cash cache refreshed on save")
}

func TestAppend_DuplicateID(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))
	require.Error(t, svc.Append(depositTx("a", "2000")))
}

func TestAppend_RejectsInvalid(t *testing.T) {
	svc := newTestService(t)

	err := svc.Append(model.Transaction{
		ID: "bad", Date: model.NewDate(2024, time.January, 5), Type: model.TypeBuy,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	snap, err := svc.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions, "nothing written on rejection")
}

func TestReplace(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))
	require.NoError(t, svc.Replace(depositTx("a", "1500")))

	snap, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.True(t, snap.Cash.Equal(dec("1500")))

	require.Error(t, svc.Replace(depositTx("ghost", "1")))
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))
	require.NoError(t, svc.Append(depositTx("b", "500")))
	require.NoError(t, svc.Remove("a"))

	snap, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "b", snap.Transactions[0].ID)
	assert.True(t, snap.Cash.Equal(dec("500")))

	require.Error(t, svc.Remove("a"))
}

func TestPricesTargetsGoalBudgets(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SetPrice(" abc ", dec("55")))
	require.NoError(t, svc.SetTarget("abc", dec("60")))
	require.NoError(t, svc.SetGoal(dec("10000")))
	require.NoError(t, svc.SetBudget("2024-01", dec("500")))

	snap, err := svc.Load()
	require.NoError(t, err)
	assert.True(t, snap.Prices["ABC"].Equal(dec("55")))
	assert.True(t, snap.Targets["ABC"].Equal(dec("60")))
	require.NotNil(t, snap.Goals.Equity)
	assert.True(t, snap.Budgets["2024-01"].Equal(dec("500")))

	require.NoError(t, svc.RemovePrice("ABC"))
	require.NoError(t, svc.RemoveTarget("ABC"))
	require.NoError(t, svc.ClearGoal())
	require.NoError(t, svc.RemoveBudget("2024-01"))

	snap, err = svc.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Prices)
	assert.Empty(t, snap.Targets)
	assert.Nil(t, snap.Goals.Equity)
	assert.Empty(t, snap.Budgets)
}

func TestSetPrice_Invalid(t *testing.T) {
	svc := newTestService(t)
	require.Error(t, svc.SetPrice("", dec("55")))
	require.Error(t, svc.SetPrice("ABC", dec("0")))
}

func TestSetBudget_InvalidMonth(t *testing.T) {
	svc := newTestService(t)
	require.Error(t, svc.SetBudget("January", dec("500")))
}

func TestImport_ReplacesSnapshot(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))

	other := filepath.Join(t.TempDir(), "other.json")
	content := `{"transactions": [{"id": "z", "date": "2024-02-01", "type": "deposit", "price": 250}]}`
	require.NoError(t, os.WriteFile(other, []byte(content), 0o644))

	require.NoError(t, svc.Import(other))

	snap, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "z", snap.Transactions[0].ID)
	assert.True(t, snap.Cash.Equal(dec("250")), "cash rederived on import")
}

func TestImport_MalformedLeavesSnapshotUntouched(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"transactions": [`), 0o644))

	require.Error(t, svc.Import(bad))

	snap, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "a", snap.Transactions[0].ID)
}

func TestExport(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Append(depositTx("a", "1000")))

	out := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, svc.Export(out))

	snap, err := Load(out)
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)
}
