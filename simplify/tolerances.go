package simplify

// NormalFlipCosine is the minimum dot product between a triangle's
// pre-contraction and post-contraction unit normals; a value below this
// rejects the contraction. 0.8 bounds per-triangle orientation change to
// roughly 37 degrees.
const NormalFlipCosine = 0.8
