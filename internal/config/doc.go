// Package config holds the declarative hook configuration model.
//
// A project declares its hooks in .hooks.yml at the repository root:
//
//	sources:
//	  - origin: https://github.com/acme/common-hooks
//	    pinned_revision: v1.2.0
//	hooks:
//	  - name: lint
//	    on_event: [pre-commit]
//	    on_file_regex: ['\.go$']
//
// Each source repository carries its own hooks.yml manifest defining the
// hooks it provides. The top-level hooks list is the override authority:
// it activates source hooks by name and may overwrite individual fields.
// A source hook whose name is absent from the top-level list is inert —
// materialized and mergeable, but never dispatched.
package config
