// Package output renders emitted pairs as shell export statements.
//
// Each pair is written as
//
//	KEY=VALUE; export KEY;
//
// after its flattened key is rendered with the configured separator and
// casing. A [Printer] may also drop pairs with a [Filter] expression and
// write an executable stub per pair with a [Spawner].
package output
