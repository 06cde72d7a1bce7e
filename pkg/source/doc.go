/*
Package source defines where pipeline items come from.

	            +-------------+
	            |   Source    |
	            |  (Items)    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   jsonl   | |  dir   | | github  |
	| document  | |  walk  | |  repo   |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Abstracts item ingestion behind one interface
- Lets the operation stay a pure transform over an item list
- Sources register themselves by type name, selected via config

🔄 Flow:
1. Config names a source type and its arguments
2. Factory builds the source
3. Operation calls Items(ctx) once per run

📝 Design Philosophy:
Sources only materialize items; they never rewrite metadata. Payload bytes
are carried opaquely (inline base64) so the transform can pass them through
untouched.
*/
package source
