/*
Package scene defines the vocabulary shared by every layer of wrangler:
node identifiers, node type tags, and reference values.

Node identifiers are opaque path-like strings owned by the host scene graph.
A pipe ('|') separates hierarchy levels and a colon (':') separates namespace
components within a level, e.g. "|set_grp|jj:jj_char_grp". This package only
ever splits on those separators; it never validates or normalizes beyond that.
*/
package scene
