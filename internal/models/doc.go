// Package models contains the wire records exchanged with the DZnutri
// backend. The backend owns every entity; the client only holds transient
// copies, so these are plain JSON-tagged structs with no behavior beyond a
// few display helpers. Field names follow the backend's schema exactly,
// including its mixed naming (productName next to product_name); changing
// them here would break the wire format.
package models
