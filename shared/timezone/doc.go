// Package timezone keeps the application timezone used when rendering
// timestamps such as a memo's createTime.
//
//	text := timezone.Format(memo.CreatedAt, constant.DateFormat)
//
// The timezone is read from APP_TIMEZONE when the package is imported and
// can be replaced with Load. Use IANA names ("UTC", "Asia/Shanghai").
package timezone
