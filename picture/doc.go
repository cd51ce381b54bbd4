// Package picture provides fixed width byte fields formatted by a per
// position mask, modeled after COBOL PICTURE clauses.
//
// A picture holds up to 255 positions. Every position has a raw byte and a
// mask symbol:
//
//  | Symbol | Kind         | Raw byte          | Character          | Default |
//  |--------|--------------|-------------------|--------------------|---------|
//  | 9      | Digit        | magnitude 0-9     | '0' + byte % 10    | 0x00    |
//  | A      | Alpha        | letter, ' ', 0x00 | byte               | ' '     |
//  | X      | AlphaNumeric | 0-127             | byte               | ' '     |
//  | other  | Unknown      | 0-127             | byte               | 0x00    |
//  |--------|--------------|-------------------|--------------------|---------|
//
// Alpha positions also accept 0x00, the fill AssignBytes writes in front of
// a short source.
//
// Unknown symbols behave like X and are reported through Warnf when a
// picture is created.
//
// Digit positions store the numeric value of the digit, not its ASCII code.
// Only the least significant decimal digit of a raw byte survives rendering,
// so a digit position holding 42 renders as '2'.
//
// Text and String
//
// Text renders every position and always returns Len() characters. A raw 0
// under X renders as a NUL character; String returns the same characters cut
// at the first NUL, the way a C string consumer would see them:
//
//  data = {'H', 0, 2}  mask = {X, X, 9}
//
//  Text()   = "H\x002"
//  String() = "H"
//
// Assignment
//
// The assignment operations differ in alignment and padding:
//
//  | Operation     | Alignment | Longer source    | Shorter source          |
//  |---------------|-----------|------------------|-------------------------|
//  | AssignBytes   | right     | keep the tail    | zero fill the front     |
//  | AssignString  | left      | keep the front   | mask default fill tail  |
//  | AssignPicture | left      | keep the front   | mask default fill tail  |
//  |---------------|-----------|------------------|-------------------------|
//
// AssignString converts each character back to a raw byte for the mask of
// its position, so assigning the output of String to a picture restores the
// original bytes when every digit position holds 0-9 and no position holds a
// raw 0.
//
// Clauses
//
// ParseMask expands a PICTURE clause into mask symbols. A symbol may be
// followed by a repeat count in parentheses:
//
//  X(3)9(2)A -> XXX99A
package picture
