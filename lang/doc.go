// Package lang evaluates options records: the small declarative language
// used to configure a component from a single attribute string, such as
//
//	{ orientation: 'horizontal', itemDataSource: select('#src').winControl.itemDataSource }
//
// The same grammar is walked in one of two modes. [Evaluate] interprets the
// record immediately and returns a value tree. [ParseToAST] returns a tree in
// which identifier expressions and object queries are left as [ast] nodes, to
// be resolved later with [Resolve] or translated to expr-lang with [Generate]
// and [Compile].
//
// # Grammar
//
// Informal EBNF:
//
//	OptionsLiteral  → Value EOF
//	Value           → null | true | false | Number | String
//	                | ObjectLiteral | ArrayLiteral
//	                | IdentifierExpr | ObjectQueryExpr
//	ObjectLiteral   → '{' (Property (',' Property)* ','?)? '}'
//	Property        → PropertyName ':' Value
//	PropertyName    → String | Number | Identifier | ReservedWord | Keyword
//	ArrayLiteral    → '[' (Value? ',')* Value? ']'
//	IdentifierExpr  → ('this' | Identifier) Access*
//	ObjectQueryExpr → Identifier '(' String ')' Access*
//	Access          → '.' (Identifier | ReservedWord | Keyword) | '[' Value ']'
//
// Duplicate keys keep the last value. Bare commas in an array leave
// [Undefined] holes; a single trailing comma does not.
//
// # Resolution
//
// Identifier expressions resolve against a scope, [Globals] by default, and
// object queries call functions from a table given with [WithFuncs]. Every
// resolved value, and every function before it is called, must pass a [Gate].
// The [DefaultGate] lets data through and rejects functions unless the host
// wrapped them with [Mark].
package lang
