// Package validate holds the numeric admission helpers shared by the
// settings store and the order form layer, so values loaded from disk and
// values typed by the user pass through one policy.
package validate
