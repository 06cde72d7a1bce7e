/*
Package status tracks what the rewrite did to every attachment and formats
it for operators.

	+-------------+
	|   Manager   |
	| (Tracking)  |
	+------+------+
	       |
	+------+------+
	|  Formatter  |
	|  (Console)  |
	+-------------+

🎯 Purpose:
- Records one AttachmentInfo per attachment touched (or item skipped)
- Formats per-attachment one-liners and progress messages
- Provides a pterm UserLogger for interactive feedback

🤝 Interfaces:
- Reporter: tracking + progress, implemented by Manager
- AttachmentFormatter: message rendering, swappable for tests
*/
package status
