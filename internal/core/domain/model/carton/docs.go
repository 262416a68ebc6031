// Package carton models the carton type catalog. Carton types are reference
// data maintained by warehouse supervisors: a named box size with a weight
// limit. Boxes in a pack either point at a carton type or carry custom
// dimensions entered at pack time.
package carton
