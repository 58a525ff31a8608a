package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// clock scans TIME columns into "HH:MM". lib/pq hands them over as
// time.Time, the mysql driver as bytes.
type clock string

func (c *clock) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = ""
	case time.Time:
		*c = clock(v.Format("15:04"))
	case []byte:
		*c = clock(trimSeconds(string(v)))
	case string:
		*c = clock(trimSeconds(v))
	default:
		return fmt.Errorf("cannot scan %T into clock", src)
	}
	return nil
}

func trimSeconds(s string) string {
	if strings.Count(s, ":") == 2 {
		return s[:strings.LastIndex(s, ":")]
	}
	return s
}

func str(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
