// Package locale holds the user-visible labels of the cities views, built on
// golang.org/x/text/message with a French (default) and an English catalog.
package locale
