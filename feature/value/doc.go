// Package value processes a tagged text-or-number variant.
//
// A Value is exactly one of Text or Number. ProcessValue matches on the tag:
// text yields its character count, numbers are doubled.
//
//	value.ProcessValue(value.Text("hello")) // 5
//	value.ProcessValue(value.Number(10))    // 20
//
// Characters are Unicode code points, so "héllo" counts 5.
package value
