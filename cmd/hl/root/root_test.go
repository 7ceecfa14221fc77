package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterline/internal/storage"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func useFileStore(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("HL_STORE", "file")
	t.Setenv("HL_DATA_DIR", dir)
	t.Setenv("HL_DB_PATH", filepath.Join(dir, "unused.db"))
	return dir
}

func TestQuestAddDoAndStatus(t *testing.T) {
	dir := useFileStore(t)

	out, err := run(t, "quest", "add", "Leg Day", "--stat", "str", "--diff", "hard")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added")

	quests, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	list, err := quests.Quests().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 500, list[0].XPReward)
	assert.Equal(t, 150, list[0].GoldReward)

	out, err = run(t, "do", list[0].ID)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "LEVEL UP")

	out, err = run(t, "status")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "Strength")
	assert.Contains(t, out, "First Quest")

	out, err = run(t, "log")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Leg Day")
	assert.Contains(t, out, "1 completions, 500 XP, 150 gold")
}

func TestDoUnknownQuestFails(t *testing.T) {
	useFileStore(t)
	_, err := run(t, "do", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestQuestAddRejectsBadStat(t *testing.T) {
	useFileStore(t)
	_, err := run(t, "quest", "add", "Flirt", "--stat", "charisma")
	assert.Error(t, err)
}

func TestProfileSetRequiresAField(t *testing.T) {
	useFileStore(t)
	_, err := run(t, "profile", "set")
	assert.Error(t, err)

	out, err := run(t, "profile", "set", "--name", "Jinwoo", "--gold", "7")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Jinwoo")
}

func TestImportPack(t *testing.T) {
	useFileStore(t)
	pack := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(pack, []byte("quests:\n  - name: Meditate\n    stat: Spirit\n    difficulty: DAILY\n  - name: Bad\n    stat: Luck\n    difficulty: EASY\n"), 0o644))

	out, err := run(t, "import", pack)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 created, 1 skipped")

	out, err = run(t, "quest", "list", "--stat", "spirit")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Meditate")

	out, err = run(t, "quest", "list", "--search", "medi")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Quests (1)")

	out, err = run(t, "quest", "list", "--search", "zzz")
	require.NoError(t, err, out)
	assert.Contains(t, out, "(none)")
}

func TestUnknownStoreFlag(t *testing.T) {
	useFileStore(t)
	_, err := run(t, "--store", "mongo", "status")
	assert.Error(t, err)
}

func TestImportStarterPack(t *testing.T) {
	useFileStore(t)
	_, err := run(t, "import")
	assert.Error(t, err, "a pack file or --starter is required")

	out, err := run(t, "import", "--starter")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Morning Run")
	assert.Contains(t, out, "0 skipped")
}
