package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_info",
		"image_save",
		"image_preview",
		"image_sample_color",
		"image_sample_colors_multi",
		"image_dominant_colors",
		"filter_blur",
		"filter_sharpen",
		"color_grayscale",
		"color_sepia",
		"image_dither",
		"image_mosaic",
		"image_resize",
		"pattern_rainbow",
		"pattern_checkerboard",
		"flag_france",
		"flag_switzerland",
		"flag_greece",
		"image_ocr",
		"image_detect_text_regions",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Tool %s defined twice", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required parameter must be declared.
			if required, ok := tool.InputSchema["required"]; ok {
				list, ok := required.([]string)
				if !ok {
					t.Fatal("'required' should be a string slice")
				}
				for _, name := range list {
					if _, ok := props[name]; !ok {
						t.Errorf("required parameter %s not in properties", name)
					}
				}
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"image_load", []string{"path"}},
		{"image_save", []string{"path"}},
		{"image_sample_color", []string{"x", "y"}},
		{"image_mosaic", []string{"seeds"}},
		{"image_resize", []string{"width", "height"}},
		{"pattern_rainbow", []string{"height", "width"}},
		{"pattern_checkerboard", []string{"square_size"}},
		{"flag_france", []string{"height", "width"}},
		{"flag_switzerland", []string{"size"}},
		{"flag_greece", []string{"height", "width"}},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := toolMap[tt.tool]
			if !ok {
				t.Fatalf("Tool %s not found", tt.tool)
			}
			got, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			if len(got) != len(tt.required) {
				t.Fatalf("required: got %v, want %v", got, tt.required)
			}
			for i := range got {
				if got[i] != tt.required[i] {
					t.Errorf("required: got %v, want %v", got, tt.required)
				}
			}
		})
	}
}

func TestToolDefinitions_NoArgumentTools(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		switch tool.Name {
		case "image_info", "filter_sharpen", "color_grayscale", "color_sepia":
			props := tool.InputSchema["properties"].(map[string]interface{})
			if len(props) != 0 {
				t.Errorf("%s: expected no parameters, got %d", tool.Name, len(props))
			}
		}
	}
}

func TestToolDefinitions_RainbowOrientationEnum(t *testing.T) {
	var rainbow Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "pattern_rainbow" {
			rainbow = tool
		}
	}

	props := rainbow.InputSchema["properties"].(map[string]interface{})
	orientation, ok := props["orientation"].(map[string]interface{})
	if !ok {
		t.Fatal("orientation parameter not found")
	}
	enum, ok := orientation["enum"].([]string)
	if !ok {
		t.Fatal("orientation enum should be a string slice")
	}
	if len(enum) != 2 || enum[0] != "horizontal" || enum[1] != "vertical" {
		t.Errorf("enum: got %v", enum)
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	tools := GetToolDefinitions()

	// Defaults advertised in the schema must match what the handlers apply.
	toolDefaults := map[string]map[string]interface{}{
		"image_save":                {"quality": 90},
		"image_preview":             {"max_size": 1024},
		"image_dominant_colors":     {"count": 5},
		"filter_blur":               {"legacy_kernel": false},
		"image_dither":              {"levels": 2},
		"pattern_rainbow":           {"orientation": "horizontal"},
		"pattern_checkerboard":      {"light": "#FFFFFF", "dark": "#000000"},
		"image_ocr":                 {"language": "eng", "binarize": false},
		"image_detect_text_regions": {"min_confidence": 0.5, "language": "eng"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for toolName, expectedDefaults := range toolDefaults {
		tool, ok := toolMap[toolName]
		if !ok {
			t.Errorf("Tool %s not found", toolName)
			continue
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: properties should be a map", toolName)
			continue
		}

		for paramName, expectedDefault := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}

			actualDefault, ok := param["default"]
			if !ok {
				t.Errorf("%s.%s: missing default value", toolName, paramName)
				continue
			}

			if actualDefault != expectedDefault {
				t.Errorf("%s.%s: default got %v (%T), want %v (%T)",
					toolName, paramName, actualDefault, actualDefault, expectedDefault, expectedDefault)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
