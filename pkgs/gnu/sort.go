// Copyright 2024 The dewey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gnu implements the version ordering used by GNU sort -V and
// coreutils filevercmp. Unlike the dewey ordering it is total: every
// pair of strings has a definite order.
package gnu

// Compare compares two version strings and returns:
//   - a negative value if a < b
//   - zero if a == b
//   - a positive value if a > b
func Compare(a, b string) int {
	i, j := 0, 0

	for i < len(a) || j < len(b) {
		// Non-digit portions compare byte by byte using the filevercmp
		// priority: '~' sorts before everything including end-of-string,
		// letters by ASCII value, all other bytes after every letter.
		for (i < len(a) && !isDigit(a[i])) || (j < len(b) && !isDigit(b[j])) {
			var ca, cb byte
			if i < len(a) {
				ca = a[i]
			}
			if j < len(b) {
				cb = b[j]
			}
			if d := order(ca) - order(cb); d != 0 {
				return d
			}
			i++
			j++
		}

		// Digit runs compare numerically. Leading zeros are skipped,
		// then the longer remaining run wins; equal-length runs are
		// decided by the first differing digit.
		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}

		firstDiff := 0
		for i < len(a) && j < len(b) && isDigit(a[i]) && isDigit(b[j]) {
			if firstDiff == 0 {
				firstDiff = int(a[i]) - int(b[j])
			}
			i++
			j++
		}
		if i < len(a) && isDigit(a[i]) {
			return 1
		}
		if j < len(b) && isDigit(b[j]) {
			return -1
		}
		if firstDiff != 0 {
			return firstDiff
		}
	}

	return 0
}

// order returns the sorting priority of a byte within a non-digit
// portion. Digits and end-of-string rank 0, '~' ranks below everything,
// letters rank by ASCII value, anything else above all letters.
func order(c byte) int {
	switch {
	case isDigit(c) || c == 0:
		return 0
	case isAlpha(c):
		return int(c)
	case c == '~':
		return -1
	}
	return int(c) + 256
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
