package catalog

// f64 returns a pointer to v, for param bounds.
func f64(v float64) *float64 { return &v }

// Pagination params shared by every list endpoint. The Leaf API pages from
// 0 and caps page sizes at 100.
func pageParam() Param {
	return Param{
		Name:        "page",
		Type:        TypeNumber,
		Description: "Zero-based page index (default: 0)",
		In:          InQuery,
		Min:         f64(0),
	}
}

func sizeParam() Param {
	return Param{
		Name:        "size",
		Type:        TypeNumber,
		Description: "Page size, between 1 and 100 (default: 20)",
		In:          InQuery,
		Min:         f64(1),
		Max:         f64(100),
	}
}

func leafUserParam() Param {
	return Param{
		Name:        "leafUserId",
		Type:        TypeString,
		Description: "UUID of the Leaf user that owns the resource",
		Required:    true,
		In:          InPath,
		Format:      "uuid",
	}
}

func fieldIDParam() Param {
	return Param{
		Name:        "fieldId",
		Type:        TypeString,
		Description: "UUID of the field",
		Required:    true,
		In:          InPath,
		Format:      "uuid",
	}
}

// weatherQueryParams are shared by all weather endpoints.
func weatherQueryParams() []Param {
	return []Param{
		{Name: "startTime", Type: TypeString, Description: "ISO 8601 start of the requested window (e.g., '2024-05-01T00:00:00Z')", In: InQuery},
		{Name: "endTime", Type: TypeString, Description: "ISO 8601 end of the requested window", In: InQuery},
		{Name: "model", Type: TypeString, Description: "Weather model to query (e.g., 'gfs', 'icon')", In: InQuery},
		{Name: "units", Type: TypeString, Description: "Unit system: 'metric' or 'imperial'", In: InQuery},
	}
}

func granularityParam() Param {
	return Param{
		Name:        "granularity",
		Type:        TypeString,
		Description: "Time resolution of the result: 'daily' or 'hourly'",
		Required:    true,
		In:          InPath,
	}
}

// Static returns the hand-written Leaf tool catalogue: fields and
// boundaries, machine operations, machine files, user management, and
// weather. Each descriptor binds one REST endpoint.
func Static() []ToolDef {
	return []ToolDef{
		// --- Fields ---
		{
			Name:        "create_field",
			Description: "Create a field for a Leaf user. The body is the field resource: name, optional farmId, and a GeoJSON MultiPolygon geometry describing the boundary.",
			Method:      "POST",
			Path:        "fields/api/users/{leafUserId}/fields",
			Params: []Param{
				leafUserParam(),
				{Name: "body", Type: TypeObject, Description: "Field resource to create (JSON object)", Required: true, In: InBody},
			},
		},
		{
			Name:        "get_field",
			Description: "Get a single field owned by a Leaf user, including its active boundary and provider linkage.",
			Method:      "GET",
			Path:        "fields/api/users/{leafUserId}/fields/{fieldId}",
			Params:      []Param{leafUserParam(), fieldIDParam()},
		},
		{
			Name: "list_fields",
			Description: "List fields across all Leaf users, paginated. Filters: type (ORIGINAL or MERGED), farmId, provider " +
				"(e.g., 'JohnDeere', 'ClimateFieldView'), and leafUserId to scope results to one user.",
			Method: "GET",
			Path:   "fields/api/fields",
			Params: []Param{
				{Name: "type", Type: TypeString, Description: "Field type filter: 'ORIGINAL' or 'MERGED'", In: InQuery},
				{Name: "farmId", Type: TypeString, Description: "Filter by farm ID", In: InQuery},
				{Name: "provider", Type: TypeString, Description: "Filter by data provider name", In: InQuery},
				{Name: "leafUserId", Type: TypeString, Description: "Filter by owning Leaf user UUID", In: InQuery, Format: "uuid"},
				pageParam(),
				sizeParam(),
			},
		},
		{
			Name:        "get_field_boundary",
			Description: "Get the active boundary of a field as a GeoJSON geometry.",
			Method:      "GET",
			Path:        "fields/api/users/{leafUserId}/fields/{fieldId}/boundary",
			Params:      []Param{leafUserParam(), fieldIDParam()},
		},
		{
			Name:        "update_field_boundary",
			Description: "Replace the active boundary of a field. The body is a GeoJSON MultiPolygon geometry; the previous boundary is archived by the Leaf API.",
			Method:      "PUT",
			Path:        "fields/api/users/{leafUserId}/fields/{fieldId}/boundary",
			Params: []Param{
				leafUserParam(),
				fieldIDParam(),
				{Name: "body", Type: TypeObject, Description: "New boundary geometry (JSON object)", Required: true, In: InBody},
			},
		},

		// --- Machine operations ---
		{
			Name: "list_operations",
			Description: "List machine operations (planting, application, harvest, tillage), paginated and sorted. Filters: " +
				"leafUserId, provider, operationType, fieldId, and a startTime/endTime window over the operation period.",
			Method: "GET",
			Path:   "operations/api/operations",
			Params: []Param{
				{Name: "leafUserId", Type: TypeString, Description: "Filter by owning Leaf user UUID", In: InQuery, Format: "uuid"},
				{Name: "provider", Type: TypeString, Description: "Filter by data provider name", In: InQuery},
				{Name: "operationType", Type: TypeString, Description: "Filter by type: 'planted', 'applied', 'harvested', or 'tillage'", In: InQuery},
				{Name: "fieldId", Type: TypeString, Description: "Filter by field UUID", In: InQuery, Format: "uuid"},
				{Name: "startTime", Type: TypeString, Description: "ISO 8601 lower bound on operation start time", In: InQuery},
				{Name: "endTime", Type: TypeString, Description: "ISO 8601 upper bound on operation end time", In: InQuery},
				{Name: "sort", Type: TypeString, Description: "Sort expression, e.g. 'startTime,desc'", In: InQuery},
				pageParam(),
				sizeParam(),
			},
		},
		{
			Name:        "get_operation",
			Description: "Get a single machine operation by ID.",
			Method:      "GET",
			Path:        "operations/api/operations/{id}",
			Params: []Param{
				{Name: "id", Type: TypeString, Description: "UUID of the operation", Required: true, In: InPath, Format: "uuid"},
			},
		},
		{
			Name:        "get_operation_summary",
			Description: "Get the summarized agronomic data of an operation (areas, totals, averages) as GeoJSON properties.",
			Method:      "GET",
			Path:        "operations/api/operations/{id}/summary",
			Params: []Param{
				{Name: "id", Type: TypeString, Description: "UUID of the operation", Required: true, In: InPath, Format: "uuid"},
			},
		},
		{
			Name:        "get_operation_units",
			Description: "Get the measurement units used by each property of an operation.",
			Method:      "GET",
			Path:        "operations/api/operations/{id}/units",
			Params: []Param{
				{Name: "id", Type: TypeString, Description: "UUID of the operation", Required: true, In: InPath, Format: "uuid"},
			},
		},

		// --- Machine files ---
		{
			Name: "list_files",
			Description: "List raw machine files, paginated and sorted. Filters: leafUserId, provider, status " +
				"(e.g., 'processed', 'failed'), origin, organizationId, and a createdTime window via startTime/endTime.",
			Method: "GET",
			Path:   "operations/api/files",
			Params: []Param{
				{Name: "leafUserId", Type: TypeString, Description: "Filter by owning Leaf user UUID", In: InQuery, Format: "uuid"},
				{Name: "provider", Type: TypeString, Description: "Filter by data provider name", In: InQuery},
				{Name: "status", Type: TypeString, Description: "Filter by processing status", In: InQuery},
				{Name: "origin", Type: TypeString, Description: "Filter by file origin: 'provider', 'automerged', 'merged', or 'uploaded'", In: InQuery},
				{Name: "organizationId", Type: TypeString, Description: "Filter by provider organization ID", In: InQuery},
				{Name: "startTime", Type: TypeString, Description: "ISO 8601 lower bound on file creation time", In: InQuery},
				{Name: "endTime", Type: TypeString, Description: "ISO 8601 upper bound on file creation time", In: InQuery},
				{Name: "sort", Type: TypeString, Description: "Sort expression, e.g. 'createdTime,desc'", In: InQuery},
				pageParam(),
				sizeParam(),
			},
		},
		{
			Name:        "get_file",
			Description: "Get a single machine file by ID, including its processing metadata.",
			Method:      "GET",
			Path:        "operations/api/files/{id}",
			Params: []Param{
				{Name: "id", Type: TypeString, Description: "UUID of the file", Required: true, In: InPath, Format: "uuid"},
			},
		},
		{
			Name:        "get_file_summary",
			Description: "Get the summarized agronomic data of a machine file.",
			Method:      "GET",
			Path:        "operations/api/files/{id}/summary",
			Params: []Param{
				{Name: "id", Type: TypeString, Description: "UUID of the file", Required: true, In: InPath, Format: "uuid"},
			},
		},
		{
			Name:        "get_file_status",
			Description: "Get the step-by-step processing status of a machine file.",
			Method:      "GET",
			Path:        "operations/api/files/{id}/status",
			Params: []Param{
				{Name: "id", Type: TypeString, Description: "UUID of the file", Required: true, In: InPath, Format: "uuid"},
			},
		},

		// --- User management ---
		{
			Name:        "list_users",
			Description: "List Leaf users, paginated. Filters: email, name, and externalId (your own identifier for the user).",
			Method:      "GET",
			Path:        "usermanagement/api/users",
			Params: []Param{
				{Name: "email", Type: TypeString, Description: "Filter by user email", In: InQuery},
				{Name: "name", Type: TypeString, Description: "Filter by user name", In: InQuery},
				{Name: "externalId", Type: TypeString, Description: "Filter by external ID", In: InQuery},
				pageParam(),
				sizeParam(),
			},
		},

		// --- Weather ---
		{
			Name:        "get_field_weather_forecast",
			Description: "Get the weather forecast for a field, daily or hourly. The window defaults to the provider's full forecast range when startTime/endTime are omitted.",
			Method:      "GET",
			Path:        "weather/api/users/{leafUserId}/weather/forecast/field/{fieldId}/{granularity}",
			Params:      append([]Param{leafUserParam(), fieldIDParam(), granularityParam()}, weatherQueryParams()...),
		},
		{
			Name:        "get_field_weather_history",
			Description: "Get historical weather for a field, daily or hourly, over a startTime/endTime window.",
			Method:      "GET",
			Path:        "weather/api/users/{leafUserId}/weather/historical/field/{fieldId}/{granularity}",
			Params:      append([]Param{leafUserParam(), fieldIDParam(), granularityParam()}, weatherQueryParams()...),
		},
		{
			Name:        "get_weather_forecast",
			Description: "Get the weather forecast for a latitude/longitude point, daily or hourly, without requiring a Leaf user or field.",
			Method:      "GET",
			Path:        "weather/api/weather/forecast/{granularity}/{lat},{lon}",
			Params: append([]Param{
				granularityParam(),
				{Name: "lat", Type: TypeString, Description: "Latitude in decimal degrees", Required: true, In: InPath},
				{Name: "lon", Type: TypeString, Description: "Longitude in decimal degrees", Required: true, In: InPath},
			}, weatherQueryParams()...),
		},
		{
			Name:        "get_weather_history",
			Description: "Get historical weather for a latitude/longitude point, daily or hourly, over a startTime/endTime window.",
			Method:      "GET",
			Path:        "weather/api/weather/historical/{granularity}/{lat},{lon}",
			Params: append([]Param{
				granularityParam(),
				{Name: "lat", Type: TypeString, Description: "Latitude in decimal degrees", Required: true, In: InPath},
				{Name: "lon", Type: TypeString, Description: "Longitude in decimal degrees", Required: true, In: InPath},
			}, weatherQueryParams()...),
		},
	}
}
