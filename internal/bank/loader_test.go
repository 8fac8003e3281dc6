package bank

import (
	"os"
	"path/filepath"
	"testing"

	"quizsheet/internal/config"
	"quizsheet/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info", Env: "test"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// writeQuizFile builds an xlsx file with the given header and rows.
func writeQuizFile(t *testing.T, header []string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		addr, err := excelize.JoinCellName("A", i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}

	path := filepath.Join(t.TempDir(), "quiz.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var testHeader = []string{"question", "option_a", "option_b", "option_c", "option_d", "answer", "explanation"}

func TestLoad(t *testing.T) {
	path := writeQuizFile(t, testHeader, [][]string{
		{"다음 중 맞는 것은? She goes to school.", "a. go", "b. goes", "c. going", "d. gone", "b. 3인칭 단수", "동사 변화"},
		{"Second question", "one", "two", "three", "four", "3", "explanation"},
	})

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Size())

	q, ok := bank.Question(0)
	require.True(t, ok)
	// Option prefixes are stripped, the answer field keeps its own.
	assert.Equal(t, [4]string{"go", "goes", "going", "gone"}, q.Options)
	assert.Equal(t, "b. 3인칭 단수", q.RawAnswer)
	assert.Equal(t, "동사 변화", q.Explanation)
}

func TestLoad_HeaderCaseInsensitive(t *testing.T) {
	header := []string{"Question", "OPTION_A", "Option_B", "option_c", "OPTION_D", "Answer", "Explanation"}
	path := writeQuizFile(t, header, [][]string{
		{"q", "1", "2", "3", "4", "a", "e"},
	})

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Size())
}

func TestLoad_SkipsInvalidRows(t *testing.T) {
	path := writeQuizFile(t, testHeader, [][]string{
		{"", "a", "b", "c", "d", "1", "missing question text"},
		{"missing option", "a", "", "c", "d", "1", ""},
		{"valid", "a", "b", "c", "d", "2", ""},
	})

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Size())

	q, ok := bank.Question(0)
	require.True(t, ok)
	assert.Equal(t, "valid", q.Text)
}

func TestLoad_MissingColumn(t *testing.T) {
	header := []string{"question", "option_a", "option_b", "option_c", "option_d", "answer"}
	path := writeQuizFile(t, header, [][]string{
		{"q", "1", "2", "3", "4", "a"},
	})

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explanation")
}

func TestLoad_NoValidRows(t *testing.T) {
	path := writeQuizFile(t, testHeader, [][]string{
		{"", "", "", "", "", "", ""},
	})

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestStripOptionPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a. go", "go"},
		{"B. goes", "goes"},
		{"c.going", "going"},
		{"d. gone ", "gone"},
		{"plain option", "plain option"},
		{"e. not an option letter", "e. not an option letter"},
		{"a", "a"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripOptionPrefix(tt.in), "input %q", tt.in)
	}
}
