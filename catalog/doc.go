// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the ordered set of voting categories.

A Catalog is loaded once at startup and never changes afterwards, so it can
be shared between goroutines without locking.

	cat, err := catalog.Default()            // embedded catalog
	cat, err := catalog.Load("catalog.json") // from a file

The file format is an ordered JSON array:

	[
	    {"name": "色", "options": ["ピンク", "黒", "白"]},
	    {"name": "小物", "options": ["サングラス", "シュシュ"]}
	]

Category names must be unique, non-empty, and must not contain ':'.
Option labels must be unique within their category.
*/
package catalog
