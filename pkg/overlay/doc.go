// Package overlay defines the typed shape model consumed by renderers: an
// SVG-ready canvas plus the geometry derived from parsed image-map areas.
// Builders reside in internal/model but return the types defined here.
// Geometry values are copied from the source coordinates without unit
// conversion, so the overlay aligns with the raster image exactly when the
// declared dimensions match the size the map was authored against.
package overlay
