/*
Package config loads and validates the parameters of a MIME rewrite run.

	+-------------+
	|   Config    |
	|  (Params)   |
	+------+------+
	       |
	+------+------+
	|   Parsers   |
	| YAML/HCL/JSON|
	+-------------+

🎯 Purpose:
- Defines the node parameters (MIME type, attachment selector, rename policy)
- Parses YAML, HCL and JSON config files through a parser registry
- Validates fatal configuration errors before any item is processed

⚡ Key Responsibilities:
- Parser registration and selection by filename
- Defaulting (property "data", policy "smart", source "jsonl")
- Rejecting an empty extension when update_extension is enabled

🤝 Interfaces:
- Parser: one implementation per config format

📝 Design Philosophy:
Configuration errors are deterministic and fatal. They are reported once,
at load time, never retried, and never deferred into the per-item loop.
*/
package config
