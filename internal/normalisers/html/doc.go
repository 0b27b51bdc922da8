// Package html reduces HTML pages to readable plain text. Scripts, styles
// and comments are dropped, block elements become line breaks and
// entities are decoded.
package html
