package scaffold

import "strings"

// Boilerplate emitted for a new C++ library module. Placeholders:
// {{name}} module name, {{path}} workspace-relative directory,
// {{guard}} include guard token.

const headerTemplate = `#ifndef {{guard}}
#define {{guard}}

namespace {{name}} {

}  // namespace {{name}}

#endif  // {{guard}}
`

const sourceTemplate = `#include "{{path}}/{{name}}.h"

namespace {{name}} {

}  // namespace {{name}}
`

const buildTemplate = `cc_library(
    name = "{{name}}",
    srcs = ["{{name}}.cc"],
    hdrs = ["{{name}}.h"],
    visibility = ["//visibility:public"],
)
`

// render substitutes every placeholder in tmpl.
func render(tmpl string, subs map[string]string) string {
	pairs := make([]string, 0, len(subs)*2)
	for key, value := range subs {
		pairs = append(pairs, "{{"+key+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
