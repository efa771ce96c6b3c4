package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
)

// dialect captures the statement differences between supported drivers.
type dialect struct {
	name string
	// createTable is the idempotent schema statement.
	createTable string
	// returning reports whether INSERT ... RETURNING id is used in place of
	// sql.Result.LastInsertId.
	returning bool
	// numbered reports whether placeholders are written $1, $2, ... instead of ?.
	numbered bool
}

var dialects = map[string]dialect{
	"mysql": {
		name: "mysql",
		createTable: `CREATE TABLE IF NOT EXISTS tasks (
	id INT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	done BOOLEAN NOT NULL DEFAULT FALSE
)`,
	},
	"postgres": {
		name: "postgresql",
		createTable: `CREATE TABLE IF NOT EXISTS tasks (
	id SERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	done BOOLEAN NOT NULL DEFAULT FALSE
)`,
		returning: true,
		numbered:  true,
	},
	"sqlite3": {
		name: "sqlite",
		createTable: `CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title VARCHAR(255) NOT NULL,
	done BOOLEAN NOT NULL DEFAULT 0
)`,
	},
}

func dialectFor(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
	return d, nil
}

// rebind rewrites ? placeholders into the dialect's form. Statements in this
// package never contain literal question marks.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
