package receitas

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/app"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/db"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// readSource reads a file, or stdin when path is "-".
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if strings.TrimSpace(path) == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func readIngredientLines(path string, stdin io.Reader) ([]string, error) {
	b, err := readSource(path, stdin)
	if err != nil {
		return nil, err
	}
	return service.SplitIngredientLines(string(b)), nil
}

func writeSink(path string, stdout io.Writer, b []byte) error {
	if strings.TrimSpace(path) == "-" {
		_, err := stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// parseDateOrToday reads a YYYY-MM-DD flag value in local time.
func parseDateOrToday(flag, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q (expected YYYY-MM-DD)", flag, value)
	}
	return t, nil
}
