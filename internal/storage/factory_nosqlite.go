//go:build !sqlite

package storage

import errgo "gopkg.in/errgo.v1"

func newSQLiteStore(_ string) (Store, error) {
	return nil, errgo.New("sqlite backend unavailable in this build; rebuild with -tags sqlite")
}
