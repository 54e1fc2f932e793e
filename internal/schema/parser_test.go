// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvegen/pvegen/pkg/types"
)

const sampleDocument = `[
  {
    "path": "/nodes",
    "text": "nodes",
    "leaf": 0,
    "info": {
      "GET": {
        "name": "index",
        "description": "Cluster node index.",
        "returns": {"type": "array", "description": "node list"}
      }
    },
    "children": [
      {
        "path": "/nodes/{node}",
        "text": "{node}",
        "leaf": 0,
        "info": {
          "GET": {
            "name": "index",
            "parameters": {
              "type": "object",
              "properties": {
                "node": {
                  "type": "string",
                  "format": "pve-node",
                  "description": "The cluster node name."
                }
              }
            }
          }
        },
        "children": [
          {
            "path": "/nodes/{node}/status",
            "text": "status",
            "leaf": 1,
            "info": {
              "GET": {
                "name": "status",
                "protected": 1,
                "proxyto": "node",
                "parameters": {
                  "properties": {
                    "node": {"type": "string", "format": "pve-node"}
                  }
                },
                "returns": {"type": "object"}
              }
            }
          }
        ]
      }
    ]
  }
]`

func TestParser_Parse_Hierarchy(t *testing.T) {
	parser := NewParser(nil)
	endpoints, err := parser.Parse([]byte(sampleDocument))
	require.NoError(t, err)
	require.Len(t, endpoints, 1)

	nodes := endpoints[0]
	assert.Equal(t, "/nodes", nodes.Path)
	assert.Equal(t, "nodes", nodes.Text)
	assert.False(t, nodes.Leaf)
	assert.Empty(t, nodes.PathParams)
	require.Len(t, nodes.Methods, 1)
	assert.Equal(t, "GET", nodes.Methods[0].Verb)
	require.NotNil(t, nodes.Methods[0].Returns)
	assert.Equal(t, "array", nodes.Methods[0].Returns.Type)

	require.Len(t, nodes.Children, 1)
	item := nodes.Children[0]
	assert.Equal(t, "/nodes/{node}", item.Path)
	assert.Equal(t, []string{"node"}, item.PathParams)

	require.Len(t, item.Children, 1)
	status := item.Children[0]
	assert.True(t, status.Leaf)
	require.Len(t, status.Methods, 1)
	assert.True(t, status.Methods[0].Protected)
	assert.Equal(t, "node", status.Methods[0].ProxyTo)
}

func TestParser_Parse_ParameterOrder(t *testing.T) {
	doc := `[{
	  "path": "/access/users",
	  "text": "users",
	  "leaf": 1,
	  "info": {
	    "POST": {
	      "name": "create_user",
	      "parameters": {
	        "properties": {
	          "userid": {"type": "string", "format": "pve-userid"},
	          "password": {"type": "string", "minLength": 5, "optional": 1},
	          "email": {"type": "string", "format": "email", "optional": 1},
	          "enable": {"type": "boolean", "optional": 1, "default": 1}
	        }
	      }
	    }
	  }
	}]`

	parser := NewParser(nil)
	endpoints, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	params := endpoints[0].Methods[0].Parameters
	require.Len(t, params, 4)
	names := []string{params[0].Name, params[1].Name, params[2].Name, params[3].Name}
	assert.Equal(t, []string{"userid", "password", "email", "enable"}, names)

	assert.False(t, params[0].Optional)
	assert.True(t, params[1].Optional)
	require.NotNil(t, params[1].MinLength)
	assert.Equal(t, 5, *params[1].MinLength)
	assert.Equal(t, "email", params[2].Format.Name)
}

func TestParser_Parse_NestedFormat(t *testing.T) {
	doc := `[{
	  "path": "/nodes/{node}/qemu",
	  "text": "qemu",
	  "leaf": 1,
	  "info": {
	    "POST": {
	      "name": "create_vm",
	      "parameters": {
	        "properties": {
	          "node": {"type": "string", "format": "pve-node"},
	          "net0": {
	            "type": "string",
	            "optional": 1,
	            "format": {
	              "model": {"type": "string", "enum": ["virtio", "e1000"]},
	              "bridge": {"type": "string", "format": "pve-iface", "optional": 1}
	            }
	          }
	        }
	      }
	    }
	  }
	}]`

	parser := NewParser(nil)
	endpoints, err := parser.Parse([]byte(doc))
	require.NoError(t, err)

	params := endpoints[0].Methods[0].Parameters
	require.Len(t, params, 2)

	net := params[1]
	assert.True(t, net.Format.IsNested())
	require.Len(t, net.Format.Nested, 2)
	assert.Equal(t, "model", net.Format.Nested[0].Name)
	assert.Equal(t, []string{"virtio", "e1000"}, net.Format.Nested[0].Enum)
	assert.Equal(t, "bridge", net.Format.Nested[1].Name)
	assert.Equal(t, "pve-iface", net.Format.Nested[1].Format.Name)
}

func TestParser_Parse_UndeclaredPathParamWarns(t *testing.T) {
	doc := `[{
	  "path": "/nodes/{node}",
	  "text": "{node}",
	  "leaf": 1,
	  "info": {
	    "GET": {"name": "index"}
	  }
	}]`

	var warns types.Warnings
	endpoints, err := NewParser(&warns).Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, []string{"node"}, endpoints[0].PathParams)
	assert.Empty(t, endpoints[0].Methods[0].Parameters)

	require.Equal(t, 1, warns.Len())
	warning := warns.All()[0]
	assert.Equal(t, "/nodes/{node}", warning.Path)
	assert.Contains(t, warning.Message, "node")
	assert.Contains(t, warning.Message, "GET")
}

func TestParser_Parse_DuplicateParameter(t *testing.T) {
	doc := `[{
	  "path": "/pools",
	  "text": "pools",
	  "leaf": 1,
	  "info": {
	    "POST": {
	      "name": "create_pool",
	      "parameters": {
	        "properties": {
	          "poolid": {"type": "string"},
	          "poolid": {"type": "string"}
	        }
	      }
	    }
	  }
	}]`

	parser := NewParser(nil)
	_, err := parser.Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParser_Parse_InvalidVerb(t *testing.T) {
	doc := `[{
	  "path": "/version",
	  "text": "version",
	  "leaf": 1,
	  "info": {
	    "PATCH": {"name": "nope"}
	  }
	}]`

	parser := NewParser(nil)
	_, err := parser.Parse([]byte(doc))
	require.Error(t, err)

	var schemaErr *types.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "PATCH", schemaErr.Method)
}

func TestParser_Parse_MinimumExceedsMaximum(t *testing.T) {
	doc := `[{
	  "path": "/test",
	  "text": "test",
	  "leaf": 1,
	  "info": {
	    "PUT": {
	      "name": "update",
	      "parameters": {
	        "properties": {
	          "memory": {"type": "integer", "minimum": 100, "maximum": 16}
	        }
	      }
	    }
	  }
	}]`

	parser := NewParser(nil)
	_, err := parser.Parse([]byte(doc))
	require.Error(t, err)

	var schemaErr *types.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "memory", schemaErr.Param)
}

func TestParser_Parse_InvalidParameterName(t *testing.T) {
	doc := `[{
	  "path": "/test",
	  "text": "test",
	  "leaf": 1,
	  "info": {
	    "PUT": {
	      "name": "update",
	      "parameters": {
	        "properties": {
	          "9bad": {"type": "string"}
	        }
	      }
	    }
	  }
	}]`

	parser := NewParser(nil)
	_, err := parser.Parse([]byte(doc))
	require.Error(t, err)
}

func TestParser_Parse_TemplateNameAccepted(t *testing.T) {
	doc := `[{
	  "path": "/test",
	  "text": "test",
	  "leaf": 1,
	  "info": {
	    "PUT": {
	      "name": "update",
	      "parameters": {
	        "properties": {
	          "link[n]": {"type": "string", "optional": 1}
	        }
	      }
	    }
	  }
	}]`

	parser := NewParser(nil)
	endpoints, err := parser.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "link[n]", endpoints[0].Methods[0].Parameters[0].Name)
}
