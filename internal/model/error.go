package model

import "errors"

var ErrorValidation = errors.New("validation failed")
var ErrorDuplicateEmail = errors.New("user already exists")
var ErrorUserNotFound = errors.New("user not found")
var ErrorInvalidEmail = errors.New("invalid email")
var ErrorIncorrectPassword = errors.New("incorrect password")
var ErrorUnverifiedAccount = errors.New("unverified member")
var ErrorTokenInvalid = errors.New("token is not valid")
var ErrorTokenExpired = errors.New("token has expired")
var ErrorTokenPurposeMismatch = errors.New("token purpose mismatch")
var ErrorSendFailed = errors.New("can't send email")
var ErrorCategoryNotFound = errors.New("category not found")
var ErrorFileNotFound = errors.New("file not found")
