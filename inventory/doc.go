// Package inventory reads, aggregates, deduplicates, splits and merges
// BrickLink-style inventory manifests.
//
// A manifest is an XML document whose root container holds ITEM records:
//
//	<INVENTORY>
//	  <ITEM>
//	    <ITEMTYPE>P</ITEMTYPE>
//	    <ITEMID>3001</ITEMID>
//	    <COLOR>5</COLOR>
//	    <QTY>12</QTY>
//	  </ITEM>
//	</INVENTORY>
//
// Records are grouped by their (ITEMID, COLOR) Key. Within a group only the
// first-seen record's fields survive; quantities are summed into a fresh
// copy of it, so a loaded Manifest is never mutated.
package inventory
