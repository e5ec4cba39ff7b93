/*
Package conf extends builtin 'flag' package to provide:
- environment parsing with predefined prefix,
- config dump generation with current values of registered flags,
- ability to extract current values of registered flags (defined with wrappers),
- predefined flags for logging (logrus integration),
*/
package conf
