// Uniform interface over cryptographic key types.
//
// Each key type lives in its own package and registers itself here by name (eg, the "ec" type in the eckey package), in the style of database/sql drivers. Callers import the implementing package for its side effect and then work against the [Key] interface, routing serialized [Record] values by their "type" field.
//
// Key material and signatures cross the API boundary as [Input] values: either [Raw] bytes or a [Hex] string. These are decoded exactly once, by [ToBytes], at each entry point.
package nkey
