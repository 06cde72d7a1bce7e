/*
Package operation implements the core business logic of the MIME rewrite node.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Process   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Drives the per-item rewrite loop over a source's items
- Matches attachments against the property selector glob
- Applies the rename policy and MIME replacement
- Reports every attachment change to the status reporter

🔄 Flow:
1. Receives items from a source
2. Matches each item's attachments against the selector
3. Clones matching attachments and rewrites their metadata
4. Persists the transformed item list (or previews it)

⚡ Key Responsibilities:
- Fatal missing-attachment errors with the item index
- skip_missing pass-through semantics
- Coordinating sync/async execution via the runner

🤝 Interfaces:
- Source: where items come from
- Reporter: per-attachment status tracking
- Config: per-run parameters

📝 Design Philosophy:
ProcessItems is a pure transform over an item list: same input, same output,
no I/O. Everything stateful (loading, writing, console feedback) lives at
the edges so the transform stays trivially testable.
*/
package operation
