package z

// C is an opaque clause handle: identity only. The engine never
// dereferences a C; it only stores it alongside the literal that
// justifies a forbidden interval and hands it back unchanged through
// Justifications. The zero value, CNull, marks "no clause" — a literal
// justification with no clause back-reference (spec §3 "clause — an
// optional back-reference ... may be absent; never owned").
type C uintptr

// CNull is the sentinel "no clause" handle.
const CNull C = 0
