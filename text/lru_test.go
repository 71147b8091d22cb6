// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"
)

func TestLayoutLRU(t *testing.T) {
	c := new(layoutCache)
	put := func(i int) {
		c.Put(layoutKey{str: strconv.Itoa(i)}, nil)
	}
	get := func(i int) bool {
		_, ok := c.Get(layoutKey{str: strconv.Itoa(i)})
		return ok
	}
	testLRU(t, put, get)
}

func TestLayoutLRUReplace(t *testing.T) {
	c := new(layoutCache)
	k := layoutKey{str: "a", maxWidth: 10}
	c.Put(k, []string{"old"})
	c.Put(k, []string{"new"})
	if rows, _ := c.Get(k); len(rows) != 1 || rows[0] != "new" {
		t.Errorf("got %q, want [new]", rows)
	}
	if n := len(c.m); n != 1 {
		t.Errorf("cache holds %d entries, want 1", n)
	}
}

func testLRU(t *testing.T, put func(i int), get func(i int) bool) {
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
