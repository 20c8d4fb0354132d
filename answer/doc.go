// Package answer grounds policy answers in retrieved document passages.
package answer
