// Package numeral formats numbers as Chinese or English numeral text and
// parses Chinese numeral text back into numbers.
package numeral
