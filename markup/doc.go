// Package markup parses tagged text into styled runs and embedded objects
// for richtext documents.
//
// Tags have the form [name='value'] and change the style of the text that
// follows, or insert an object:
//
//	[font='bold']Title[font=''] and [colour='FFFF0000']red[colour='FF000000'] text
//	[vert-alignment='centre'][image-size='w:16 h:16'][image='icon'] inline icon
//
// Supported tags are font, colour, image, window, vert-alignment, padding
// (l:.. t:.. r:.. b:..), left-padding, top-padding, right-padding,
// bottom-padding and image-size (w:.. h:..). Unknown tags are ignored.
// A literal '[' is written as \[ and a literal backslash as \\.
//
// Fonts, images and windows are looked up by name in tables given to New.
// Each image or window contributes one ObjectReplacement code point.
package markup
