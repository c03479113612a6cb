// Package imagemap defines the public contracts for loading and parsing
// HTML image-map sources. Two input dialects are supported: full HTML
// documents carrying <area> elements, and the line-oriented .map files
// produced by GIMP's image-map plugin. Implementations live under
// internal/imagemap but return the types defined here, keeping the public
// API decoupled from the parsing machinery.
package imagemap
