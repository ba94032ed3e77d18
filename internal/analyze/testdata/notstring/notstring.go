package notstring

//fmtgen:format
const number = 3
