package api

import (
	"github.com/JaimeStill/arbiter/internal/config"
	"github.com/JaimeStill/arbiter/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Decision":        decisionSchema(),
		"EvaluateCommand": evaluateCommandSchema(),
		"DisposeCommand":  disposeCommandSchema(),
		"Disposition":     dispositionSchema(),
		"Prompt":          promptSchema(),
		"PromptCommand":   promptCommandSchema(),
	})

	spec.Paths["/decisions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List decisions",
			Tags:    []string{"decisions"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("verdict", "string", "Filter by verdict", false),
				openapi.QueryParam("policy_mode", "string", "Filter by policy mode", false),
				openapi.QueryParam("human_action", "string", "Filter by disposition action", false),
				openapi.QueryParam("pending", "boolean", "Only decisions without a disposition", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated decisions", "Decision"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Evaluate an AI output",
			Description: "Runs the evaluation pipeline and records the resulting decision.",
			Tags:        []string{"decisions"},
			RequestBody: openapi.RequestBodyJSON("EvaluateCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Recorded decision", "Decision"),
				400: openapi.ResponseRef("BadRequest"),
				502: openapi.ResponseRef("BadGateway"),
			},
		},
	}

	spec.Paths["/decisions/modes"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Available policy modes",
			Tags:    []string{"decisions"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Policy mode names"},
			},
		},
	}

	spec.Paths["/decisions/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search decisions",
			Description: "Paginated search over output, context, and explanation text.",
			Tags:        []string{"decisions"},
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated decisions", "Decision"),
			},
		},
	}

	spec.Paths["/decisions/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Find a decision",
			Tags:    []string{"decisions"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "integer", "int64", "Decision identifier"),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Decision", "Decision"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/decisions/{id}/dispositions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Disposition history",
			Tags:    []string{"decisions"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "integer", "int64", "Decision identifier"),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Dispositions, oldest first", "Disposition"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Record a disposition",
			Description: "Updates the decision's current action and appends to the disposition log.",
			Tags:        []string{"decisions"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "integer", "int64", "Decision identifier"),
			},
			RequestBody: openapi.RequestBodyJSON("DisposeCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated decision", "Decision"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/decisions/recent"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Recent decisions",
			Tags:    []string{"decisions"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("limit", "integer", "Maximum results", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Decisions, newest first", "Decision"),
			},
		},
	}

	spec.Paths["/prompts"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List prompt overrides",
			Tags:    []string{"prompts"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated prompt overrides", "Prompt"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create a prompt override",
			Tags:        []string{"prompts"},
			RequestBody: openapi.RequestBodyJSON("PromptCommand", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created prompt override", "Prompt"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/prompts/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Find a prompt override",
			Tags:    []string{"prompts"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "string", "uuid", "Prompt identifier"),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Prompt override", "Prompt"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary: "Update a prompt override",
			Tags:    []string{"prompts"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "string", "uuid", "Prompt identifier"),
			},
			RequestBody: openapi.RequestBodyJSON("PromptCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated prompt override", "Prompt"),
				404: openapi.ResponseRef("NotFound"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
		Delete: &openapi.Operation{
			Summary: "Delete a prompt override",
			Tags:    []string{"prompts"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "string", "uuid", "Prompt identifier"),
			},
			Responses: map[int]*openapi.Response{
				204: {Description: "Deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/prompts/{id}/activate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Activate a prompt override",
			Description: "Makes this override the active instruction source for its stage.",
			Tags:        []string{"prompts"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "string", "uuid", "Prompt identifier"),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Activated prompt override", "Prompt"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/prompts/{id}/deactivate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Deactivate a prompt override",
			Tags:    []string{"prompts"},
			Parameters: []*openapi.Parameter{
				openapi.PathParam("id", "string", "uuid", "Prompt identifier"),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Deactivated prompt override", "Prompt"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	return spec
}

func decisionSchema() *openapi.Schema {
	zero := 0.0
	one := 1.0
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":           {Type: "integer", Format: "int64"},
			"created_at":   {Type: "string", Format: "date-time"},
			"ai_output":    {Type: "string"},
			"task_context": {Type: "string"},
			"policy_mode": {
				Type: "string",
				Enum: []any{"strict", "balanced", "relaxed"},
			},
			"verdict": {
				Type: "string",
				Enum: []any{"APPROVE", "REVIEW_REQUIRED", "REJECT"},
			},
			"confidence": {
				Type:    "number",
				Minimum: &zero,
				Maximum: &one,
			},
			"risk_flags":         {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"explanation":        {Type: "string"},
			"recommended_action": {Type: "string"},
			"model_name":         {Type: "string"},
			"provider_name":      {Type: "string"},
			"human_action": {
				Type: "string",
				Enum: []any{"APPROVED", "REJECTED", "REVISION_REQUESTED"},
			},
			"human_notes": {Type: "string"},
		},
	}
}

func evaluateCommandSchema() *openapi.Schema {
	return &openapi.Schema{
		Type:     "object",
		Required: []string{"ai_output", "task_context"},
		Properties: map[string]*openapi.Schema{
			"ai_output":    {Type: "string", Description: "AI-generated content to evaluate"},
			"task_context": {Type: "string", Description: "What the AI was trying to do"},
			"policy_mode": {
				Type:    "string",
				Enum:    []any{"strict", "balanced", "relaxed"},
				Default: "balanced",
			},
		},
	}
}

func disposeCommandSchema() *openapi.Schema {
	return &openapi.Schema{
		Type:     "object",
		Required: []string{"action"},
		Properties: map[string]*openapi.Schema{
			"action": {
				Type: "string",
				Enum: []any{"APPROVED", "REJECTED", "REVISION_REQUESTED"},
			},
			"notes": {Type: "string", Description: "Reviewer notes; defaults per action when omitted"},
		},
	}
}

func dispositionSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":          {Type: "integer", Format: "int64"},
			"decision_id": {Type: "integer", Format: "int64"},
			"action": {
				Type: "string",
				Enum: []any{"APPROVED", "REJECTED", "REVISION_REQUESTED"},
			},
			"notes":       {Type: "string"},
			"disposed_at": {Type: "string", Format: "date-time"},
		},
	}
}

func promptSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":           {Type: "string", Format: "uuid"},
			"name":         {Type: "string"},
			"stage":        {Type: "string", Enum: []any{"evaluate"}},
			"instructions": {Type: "string"},
			"description":  {Type: "string"},
			"active":       {Type: "boolean"},
		},
	}
}

func promptCommandSchema() *openapi.Schema {
	return &openapi.Schema{
		Type:     "object",
		Required: []string{"name", "stage", "instructions"},
		Properties: map[string]*openapi.Schema{
			"name":         {Type: "string"},
			"stage":        {Type: "string", Enum: []any{"evaluate"}},
			"instructions": {Type: "string"},
			"description":  {Type: "string"},
		},
	}
}
